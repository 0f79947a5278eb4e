package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/clockd/internal/commands"
	"github.com/sandeepkv93/clockd/internal/model"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.Focus()
	m.commandInput.SetValue("")
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m = m.closePalette()
		return m, nil
	}

	var out tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Mode: func(a commands.ModeArgs) (commands.Result, error) {
			m, out = m.setMode(a.Mode)
			return commands.Result{Message: fmt.Sprintf("mode: %s", a.Mode.Label())}, nil
		},
		Start: func() (commands.Result, error) {
			switch m.Mode {
			case model.ModeStopwatch:
				m, out = m.startStopwatch()
			case model.ModeCountdown:
				m, out = m.startCountdown()
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "start needs stopwatch or countdown mode"}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Stop: func() (commands.Result, error) {
			switch m.Mode {
			case model.ModeStopwatch:
				m, out = m.stopStopwatch()
			case model.ModeCountdown:
				m, out = m.stopCountdown()
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "stop needs stopwatch or countdown mode"}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Set: func(a commands.SetArgs) (commands.Result, error) {
			var cfg model.CountdownConfig
			raws := [...]string{a.Hours, a.Minutes, a.Seconds}
			for _, f := range model.Fields {
				raw := raws[f]
				v, ok := model.ParseFieldChecked(raw)
				if !ok {
					return commands.Result{}, &commands.CommandError{
						Code:    commands.ErrCodeInvalidArgument,
						Message: fmt.Sprintf("set value %q exceeds %d", raw, model.MaxFieldValue),
					}
				}
				cfg = cfg.With(f, v)
			}
			if m.ClampFields {
				cfg = cfg.Clamped()
			}
			m.setCountdownConfig(cfg)
			return commands.Result{Message: fmt.Sprintf("countdown set to %s", cfg)}, nil
		},
		Fullscreen: func() (commands.Result, error) {
			// No variant: silent, the status line keeps its text.
			out = m.toggleFullscreen()
			if out == nil {
				return commands.Result{}, nil
			}
			return commands.Result{Message: "fullscreen requested"}, nil
		},
		History: func() (commands.Result, error) {
			m, out = m.toggleHistory()
			if m.HistoryVisible {
				return commands.Result{Message: "history shown"}, nil
			}
			return commands.Result{Message: "history hidden"}, nil
		},
		Format: func(a commands.FormatArgs) (commands.Result, error) {
			m.ClockFormat = a.Format
			return commands.Result{Message: fmt.Sprintf("clock format: %s", a.Format)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else if res.Message != "" {
		m.Status = StatusBar{Text: res.Message}
	}

	m = m.closePalette()
	return m, out
}

func (m Model) paletteSuggestions() []string {
	head := strings.Fields(m.Palette.Input)
	if len(head) > 1 {
		return nil
	}
	prefix := ""
	if len(head) == 1 {
		prefix = head[0]
	}
	return commands.Complete(prefix)
}
