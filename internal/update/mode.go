package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/clockd/internal/model"
)

// setMode switches the displayed mode. Other modes keep their values.
func (m Model) setMode(mode model.Mode) (Model, tea.Cmd) {
	if !mode.IsValid() {
		m.Status = StatusBar{Text: fmt.Sprintf("unknown mode: %q", mode), IsError: true}
		return m, nil
	}
	if m.Mode == mode {
		return m, nil
	}
	m.Mode = mode
	if mode == model.ModeClock && m.Mounted {
		m.Now = m.clock.Now()
	}
	m.Status = StatusBar{Text: fmt.Sprintf("mode: %s", mode.Label())}
	return m, m.syncTicks()
}

func (m Model) setModeByName(name string) (Model, tea.Cmd) {
	mode, err := model.ParseMode(name)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	return m.setMode(mode)
}
