package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/clockd/internal/fullscreen"
	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadingSpinner.Tick, waitForFullscreenCmd(m.fsSub)}
	if m.dispatcher != nil {
		cmds = append(cmds, waitForDeliveryCmd(m.dispatcher.C()))
	}
	if m.startFullscreen {
		cmds = append(cmds, m.toggleFullscreen())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.Height = typed.Height
		if !m.Mounted {
			m.Mounted = true
			m.Now = m.clock.Now()
		}
		return m, m.syncTicks()
	case spinner.TickMsg:
		if m.Mounted {
			return m, nil
		}
		var cmd tea.Cmd
		m.loadingSpinner, cmd = m.loadingSpinner.Update(typed)
		return m, cmd
	case TickMsg:
		return m.onTick(typed)
	case SetModeMsg:
		if m.Fullscreen {
			return m, nil
		}
		return m.setModeByName(typed.Name)
	case FullscreenChangedMsg:
		return m.onFullscreenChanged(typed)
	case fullscreen.RefusedMsg:
		return m.onFullscreenRefused(typed), nil
	case DeliveryResultMsg:
		return m.onDeliveryResult(typed)
	case HistoryLoadedMsg:
		return m.onHistoryLoaded(typed), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		return m.quit()
	}

	// Fullscreen hides every control; only the fullscreen keys and quit work.
	if m.Fullscreen {
		switch keyStr {
		case m.Keys.Fullscreen:
			return m, m.toggleFullscreen()
		case "esc":
			return m, m.exitFullscreen()
		case m.Keys.Quit:
			return m.quit()
		}
		return m, nil
	}

	if m.Palette.Active {
		if keyStr == m.Keys.Help {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		return m.handlePaletteKey(msg)
	}

	if m.Mode == model.ModeCountdown {
		if next, handled := m.handleCountdownFieldKey(msg); handled {
			return next, nil
		}
		if keyStr == "enter" {
			return m.startCountdown()
		}
	}

	switch keyStr {
	case "/":
		return m.openPalette(), nil
	case m.Keys.Clock:
		return m.setMode(model.ModeClock)
	case m.Keys.Stopwatch:
		return m.setMode(model.ModeStopwatch)
	case m.Keys.Countdown:
		return m.setMode(model.ModeCountdown)
	case m.Keys.CycleMode:
		return m.setMode(m.Mode.Next())
	case m.Keys.Start:
		switch m.Mode {
		case model.ModeStopwatch:
			return m.startStopwatch()
		case model.ModeCountdown:
			return m.startCountdown()
		}
	case m.Keys.Stop:
		switch m.Mode {
		case model.ModeStopwatch:
			return m.stopStopwatch()
		case model.ModeCountdown:
			return m.stopCountdown()
		}
	case m.Keys.Format:
		if m.Mode == model.ModeClock {
			m.ClockFormat = toggledFormat(m.ClockFormat)
			m.Status = StatusBar{Text: fmt.Sprintf("clock format: %s", m.ClockFormat)}
		}
		return m, nil
	case m.Keys.Fullscreen:
		return m, m.toggleFullscreen()
	case m.Keys.History:
		return m.toggleHistory()
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case "esc":
		m.HelpVisible = false
		m.HistoryVisible = false
		return m, nil
	case m.Keys.Quit:
		return m.quit()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	m.closeSubscriptions()
	return m, tea.Quit
}

func (m Model) View() string {
	if !m.Mounted {
		return views.RenderPlaceholder(m.loadingSpinner.View())
	}
	if m.Fullscreen {
		return m.renderFullscreen()
	}
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	side := strings.TrimSpace(strings.Join([]string{
		m.renderCommandPalette(),
		m.renderHistoryIfVisible(),
		m.renderHelpIfVisible(),
	}, "\n\n"))

	return views.RenderApp(views.AppData{
		Header:       m.renderHeader(),
		ModeBar:      m.renderModeSelector(),
		Body:         m.renderModePanel(),
		SidePane:     side,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: strings.TrimSpace(m.renderNotificationsView()),
		Footer:       m.renderFooter(),
	})
}
