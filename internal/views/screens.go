package views

import (
	"fmt"
	"strings"
)

type ModeTab struct {
	Key    string
	Label  string
	Active bool
}

type ClockPanelData struct {
	Readout string
	Big     string
	Date    string
	Format  string
}

type StopwatchPanelData struct {
	Readout string
	Big     string
	Running bool
}

type CountdownFieldData struct {
	Label   string
	View    string
	Focused bool
}

type CountdownPanelData struct {
	Readout      string
	Big          string
	Running      bool
	Fields       []CountdownFieldData
	Config       string
	ProgressView string
	ProgressPct  int
	Finished     int
}

type HistoryPanelData struct {
	Enabled   bool
	TableView string
	Count     int
	Total     string
	ErrorText string
}

type HelpPanelData struct {
	CurrentMode string
	Bindings    []string
	HelpView    string
	Guide       string
}

func RenderModeSelector(tabs []ModeTab) string {
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := fmt.Sprintf("[%s] %s", tab.Key, tab.Label)
		if tab.Active {
			parts = append(parts, activeStyle.Render("> "+label))
			continue
		}
		parts = append(parts, mutedStyle.Render("  "+label))
	}
	return strings.Join(parts, "  ")
}

func RenderClockPanel(data ClockPanelData) string {
	var b strings.Builder
	b.WriteString("current time:\n")
	b.WriteString(data.Big + "\n")
	b.WriteString(fmt.Sprintf("readout: %s\n", data.Readout))
	if data.Date != "" {
		b.WriteString(fmt.Sprintf("date: %s\n", data.Date))
	}
	b.WriteString(fmt.Sprintf("format: %s  [t] toggle", data.Format))
	return strings.TrimSpace(b.String())
}

func RenderStopwatchPanel(data StopwatchPanelData) string {
	var b strings.Builder
	b.WriteString("timer:\n")
	b.WriteString(data.Big + "\n")
	b.WriteString(fmt.Sprintf("readout: %s\n", data.Readout))
	b.WriteString(fmt.Sprintf("state: %s\n", runningLabel(data.Running)))
	b.WriteString("actions: [s]start [x]stop")
	return strings.TrimSpace(b.String())
}

func RenderCountdownPanel(data CountdownPanelData) string {
	var b strings.Builder
	b.WriteString("countdown:\n")
	b.WriteString(data.Big + "\n")
	b.WriteString(fmt.Sprintf("readout: %s\n", data.Readout))
	b.WriteString(fmt.Sprintf("state: %s\n", runningLabel(data.Running)))
	if data.ProgressView != "" {
		b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	}

	fields := make([]string, 0, len(data.Fields))
	for _, f := range data.Fields {
		cursor := " "
		if f.Focused {
			cursor = ">"
		}
		fields = append(fields, fmt.Sprintf("%s%s %s", cursor, f.Label, f.View))
	}
	b.WriteString("set: " + strings.Join(fields, "  ") + "\n")
	b.WriteString(fmt.Sprintf("config: %s\n", data.Config))
	if data.Finished > 0 {
		b.WriteString(fmt.Sprintf("finished runs: %d\n", data.Finished))
	}
	b.WriteString("actions: [tab]field [0-9]edit [enter/s]start [x]stop")
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(data HistoryPanelData) string {
	if !data.Enabled {
		return "history:\n(disabled, set history.path to record runs)"
	}
	var b strings.Builder
	b.WriteString("history:\n")
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	b.WriteString(fmt.Sprintf("runs: %d | total: %s\n", data.Count, data.Total))
	if data.Count == 0 {
		b.WriteString("(no runs recorded)")
		return b.String()
	}
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderHelpPanel(data HelpPanelData) string {
	out := fmt.Sprintf("help:\n%s mode:\n%s\n%s",
		strings.ToLower(data.CurrentMode),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
	if strings.TrimSpace(data.Guide) != "" {
		out += "\n\n" + data.Guide
	}
	return out
}

func RenderCommandPalette(active bool, input string, suggestions []string) string {
	if !active {
		return ""
	}
	out := fmt.Sprintf("command: /%s", input)
	if len(suggestions) > 0 {
		out += "\ncommands: " + strings.Join(suggestions, ", ")
	}
	return out
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func runningLabel(running bool) string {
	if running {
		return "running"
	}
	return "stopped"
}
