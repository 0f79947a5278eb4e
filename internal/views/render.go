// Package views renders clockd screens. Every function here is pure: it
// turns prepared data into a string and never touches model state.
package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	ModeBar      string
	Body         string
	SidePane     string
	StatusLine   string
	StatusError  bool
	Footer       string
	Notification string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	readoutStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	body := panelStyle.Width(52).Render(data.Body)
	row := body
	if strings.TrimSpace(data.SidePane) != "" {
		side := panelStyle.Width(52).Render(data.SidePane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, body, side)
	}

	lines := []string{headerStyle.Render(data.Header)}
	if data.ModeBar != "" {
		lines = append(lines, data.ModeBar)
	}
	lines = append(lines, row)
	if data.StatusLine != "" {
		if data.StatusError {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderFullscreen centers the enlarged readout in a width x height area.
// Unknown dimensions fall back to the bare readout.
func RenderFullscreen(big string, width, height int) string {
	content := readoutStyle.Render(big)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// RenderPlaceholder is shown until the terminal size is known.
func RenderPlaceholder(spinnerView string) string {
	return strings.TrimSpace(spinnerView + " Loading...")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
