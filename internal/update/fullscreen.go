package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/clockd/internal/fullscreen"
)

// toggleFullscreen asks the platform for the opposite state. The model only
// changes once the resulting notification arrives.
func (m Model) toggleFullscreen() tea.Cmd {
	if m.capability == nil {
		return nil
	}
	return m.capability.Toggle(m.Fullscreen)
}

func (m Model) exitFullscreen() tea.Cmd {
	if m.capability == nil {
		return nil
	}
	return m.capability.Exit(fullscreen.SourceEscape)
}

func (m Model) onFullscreenChanged(msg FullscreenChangedMsg) (Model, tea.Cmd) {
	m.Fullscreen = msg.Notification.Active
	if !m.Fullscreen {
		m.Status = StatusBar{Text: "fullscreen off"}
	}
	return m, waitForFullscreenCmd(m.fsSub)
}

func (m Model) onFullscreenRefused(msg fullscreen.RefusedMsg) Model {
	action := "enter"
	if !msg.Active {
		action = "exit"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("fullscreen %s refused by %s: %v", action, msg.Variant, msg.Err), IsError: true}
	return m
}

// closeSubscriptions unregisters from the fullscreen hub.
func (m *Model) closeSubscriptions() {
	if m.fsSub != nil {
		m.fsSub.Close()
	}
}

func waitForFullscreenCmd(sub *fullscreen.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	ch := sub.C()
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return FullscreenChangedMsg{Notification: n}
	}
}
