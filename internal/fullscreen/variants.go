package fullscreen

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// AltScreen uses the terminal's alternate screen buffer.
type AltScreen struct {
	IsTerminal func() bool
}

func (AltScreen) Name() string { return "altscreen" }

func (a AltScreen) Available() bool {
	return a.IsTerminal != nil && a.IsTerminal()
}

func (a AltScreen) Switch(active bool) (tea.Cmd, error) {
	if !a.Available() {
		return nil, ErrUnavailable
	}
	if active {
		return tea.EnterAltScreen, nil
	}
	return tea.ExitAltScreen, nil
}

// Inline clears the primary screen and renders the enlarged readout in place.
type Inline struct {
	Term func() string
}

func (Inline) Name() string { return "inline" }

func (i Inline) Available() bool {
	if i.Term == nil {
		return false
	}
	t := strings.TrimSpace(i.Term())
	return t != "" && t != "dumb"
}

func (i Inline) Switch(bool) (tea.Cmd, error) {
	if !i.Available() {
		return nil, ErrUnavailable
	}
	return tea.ClearScreen, nil
}

// DefaultVariants is the preference order used by the program.
func DefaultVariants() []Variant {
	return []Variant{
		AltScreen{IsTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }},
		Inline{Term: func() string { return os.Getenv("TERM") }},
	}
}
