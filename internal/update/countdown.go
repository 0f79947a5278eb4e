package update

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/clockd/internal/dispatch"
	"github.com/sandeepkv93/clockd/internal/model"
)

const countdownFinishedText = "Countdown finished!"

// startCountdown captures the total from the current config. Later edits to
// the fields do not touch the running countdown.
func (m Model) startCountdown() (Model, tea.Cmd) {
	total := m.Countdown.Config.TotalSeconds(m.ClampFields)
	m.Countdown.Total = total
	m.Countdown.Remaining = total
	m.Countdown.StartedAt = m.clock.Now()
	if total == 0 {
		m.Countdown.Running = false
		m.finishCountdown()
		return m, m.syncTicks()
	}
	m.Countdown.Running = true
	m.Status = StatusBar{Text: fmt.Sprintf("countdown running from %s", model.FormatHMS(total))}
	return m, m.syncTicks()
}

func (m Model) stopCountdown() (Model, tea.Cmd) {
	if !m.Countdown.Running {
		return m, nil
	}
	m.Countdown.Running = false
	m.Status = StatusBar{Text: fmt.Sprintf("countdown stopped at %s", model.FormatHMS(m.Countdown.Remaining))}
	return m, m.syncTicks()
}

// finishCountdown runs once per countdown that reaches zero.
func (m *Model) finishCountdown() {
	m.Countdown.Finished++
	m.Status = StatusBar{Text: countdownFinishedText}
	m.notify("Countdown", countdownFinishedText, "info")
	m.enqueueCompletion(dispatch.KindCountdownFinished, m.Countdown.StartedAt, m.Countdown.Total)
}

func (m Model) handleCountdownFieldKey(msg tea.KeyMsg) (Model, bool) {
	focus := m.Countdown.Focus
	switch msg.Type {
	case tea.KeyTab:
		m.Countdown.Focus = focus.Next()
		return m, true
	case tea.KeyShiftTab:
		m.Countdown.Focus = focus.Prev()
		return m, true
	case tea.KeyBackspace:
		runes := []rune(m.fieldInputs[focus].Value())
		if len(runes) > 0 {
			m.setFieldText(focus, string(runes[:len(runes)-1]))
		}
		return m, true
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return m, false
		}
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '-' {
				return m, false
			}
		}
		current := m.fieldInputs[focus].Value()
		next := current + string(msg.Runes)
		if len([]rune(next)) > m.fieldCharLimit() {
			return m, true
		}
		m.setFieldText(focus, next)
		return m, true
	}
	return m, false
}

// setFieldText stores the raw text and the coerced value for one field.
func (m *Model) setFieldText(f model.Field, raw string) {
	m.fieldInputs[f].SetValue(raw)
	m.Countdown.Config = m.Countdown.Config.With(f, model.ParseField(raw))
}

func (m *Model) setCountdownConfig(cfg model.CountdownConfig) {
	for _, f := range model.Fields {
		m.fieldInputs[f].SetValue(strconv.Itoa(cfg.Get(f)))
	}
	m.Countdown.Config = cfg
}

// countdownProgressPct is the elapsed fraction of the captured total.
func (m Model) countdownProgressPct() float64 {
	if m.Countdown.Total <= 0 {
		return 0
	}
	done := m.Countdown.Total - m.Countdown.Remaining
	return float64(done) / float64(m.Countdown.Total)
}

func (m *Model) enqueueCompletion(kind dispatch.Kind, startedAt time.Time, durationSec int) {
	if m.dispatcher == nil {
		return
	}
	ev := dispatch.Event{
		ID:          m.newID(),
		Kind:        kind,
		Mode:        string(modeForKind(kind)),
		StartedAt:   startedAt,
		At:          m.clock.Now(),
		DurationSec: max(durationSec, 0),
	}
	if err := m.dispatcher.Enqueue(ev); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("notify failed: %v", err), IsError: true}
	}
}

func modeForKind(kind dispatch.Kind) model.Mode {
	if kind == dispatch.KindStopwatchStopped {
		return model.ModeStopwatch
	}
	return model.ModeCountdown
}
