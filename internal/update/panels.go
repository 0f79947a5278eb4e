package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/views"
)

const maxNotifications = 40

// Readout is the HH:MM:SS text of the active mode.
func (m Model) Readout() string {
	switch m.Mode {
	case model.ModeStopwatch:
		return model.FormatHMS(m.Stopwatch.ElapsedSec)
	case model.ModeCountdown:
		return model.FormatHMS(m.Countdown.Remaining)
	default:
		return model.FormatClock(m.Now, m.ClockFormat)
	}
}

func (m Model) renderHeader() string {
	header := fmt.Sprintf("clockd | mode: %s", m.Mode.Label())
	if m.broker != nil {
		state := "offline"
		if m.broker.IsConnected() {
			state = "connected"
		}
		header += " | mqtt: " + state
	}
	return header
}

// renderFooter omits the fullscreen hint when no variant can serve it.
func (m Model) renderFooter() string {
	parts := []string{fmt.Sprintf("keys: %s/%s/%s mode", m.Keys.Clock, m.Keys.Stopwatch, m.Keys.Countdown)}
	if m.capability != nil && m.capability.Supported() {
		parts = append(parts, m.Keys.Fullscreen+" fullscreen")
	}
	parts = append(parts,
		"/ cmd",
		m.Keys.History+" history",
		m.Keys.Help+" help",
		m.Keys.Quit+" quit",
	)
	return strings.Join(parts, " | ")
}

func (m Model) renderModeSelector() string {
	keys := map[model.Mode]string{
		model.ModeClock:     m.Keys.Clock,
		model.ModeStopwatch: m.Keys.Stopwatch,
		model.ModeCountdown: m.Keys.Countdown,
	}
	tabs := make([]views.ModeTab, 0, len(model.Modes))
	for _, mode := range model.Modes {
		tabs = append(tabs, views.ModeTab{Key: keys[mode], Label: mode.Label(), Active: mode == m.Mode})
	}
	return views.RenderModeSelector(tabs)
}

func (m Model) renderModePanel() string {
	readout := m.Readout()
	big := views.RenderBig(readout, 1)
	switch m.Mode {
	case model.ModeStopwatch:
		return views.RenderStopwatchPanel(views.StopwatchPanelData{
			Readout: readout,
			Big:     big,
			Running: m.Stopwatch.Running,
		})
	case model.ModeCountdown:
		fields := make([]views.CountdownFieldData, 0, len(model.Fields))
		for _, f := range model.Fields {
			fields = append(fields, views.CountdownFieldData{
				Label:   f.Placeholder(),
				View:    m.fieldInputs[f].View(),
				Focused: f == m.Countdown.Focus,
			})
		}
		pct := m.countdownProgressPct()
		progressView := ""
		if m.Countdown.Total > 0 {
			progressView = m.countdownProgress.ViewAs(pct)
		}
		return views.RenderCountdownPanel(views.CountdownPanelData{
			Readout:      readout,
			Big:          big,
			Running:      m.Countdown.Running,
			Fields:       fields,
			Config:       m.Countdown.Config.String(),
			ProgressView: progressView,
			ProgressPct:  int(pct * 100),
			Finished:     m.Countdown.Finished,
		})
	default:
		return views.RenderClockPanel(views.ClockPanelData{
			Readout: readout,
			Big:     big,
			Date:    m.Now.Format("Monday, 2 January 2006"),
			Format:  string(m.ClockFormat),
		})
	}
}

func (m Model) renderHistoryIfVisible() string {
	if !m.HistoryVisible {
		return ""
	}
	return views.RenderHistoryPanel(views.HistoryPanelData{
		Enabled:   m.history != nil,
		TableView: m.historyTable.View(),
		Count:     m.History.Summary.Count,
		Total:     model.FormatHMS(m.History.Summary.TotalSec),
		ErrorText: m.History.Err,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input, m.paletteSuggestions())
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderFullscreen() string {
	return views.RenderFullscreen(views.RenderBig(m.Readout(), 2), m.Width, m.Height)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
}
