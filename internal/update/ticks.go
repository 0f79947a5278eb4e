package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/clockd/internal/model"
)

const tickInterval = time.Second

// tickGuard is the (mode, activity) pair the live tick source belongs to.
type tickGuard struct {
	mode   model.Mode
	active bool
}

func (m Model) tickActive() bool {
	switch m.Mode {
	case model.ModeClock:
		return m.Mounted
	case model.ModeStopwatch:
		return m.Stopwatch.Running
	case model.ModeCountdown:
		return m.Countdown.Running && m.Countdown.Remaining > 0
	default:
		return false
	}
}

// TickGeneration identifies the live tick source.
func (m Model) TickGeneration() int {
	return m.tickGen
}

// TickArmed reports whether a tick source is live.
func (m Model) TickArmed() bool {
	return m.tickGuard.active
}

// syncTicks tears down the current tick source and arms a new one whenever
// the (mode, activity) pair changed. Teardown is a generation bump, which
// makes any in-flight tick stale.
func (m *Model) syncTicks() tea.Cmd {
	g := tickGuard{mode: m.Mode, active: m.tickActive()}
	if g == m.tickGuard {
		return nil
	}
	m.tickGuard = g
	m.tickGen++
	if !g.active {
		return nil
	}
	return tickCmd(m.tickGen)
}

func (m Model) onTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.Gen != m.tickGen || !m.tickGuard.active {
		return m, nil
	}

	var cmds []tea.Cmd
	switch m.Mode {
	case model.ModeClock:
		m.Now = m.clock.Now()
	case model.ModeStopwatch:
		m.Stopwatch.ElapsedSec++
	case model.ModeCountdown:
		if m.Countdown.Remaining > 0 {
			m.Countdown.Remaining--
		}
		if m.Countdown.Remaining == 0 {
			m.Countdown.Running = false
			m.finishCountdown()
		}
	}

	if m.tickActive() {
		cmds = append(cmds, tickCmd(m.tickGen))
	} else {
		cmds = append(cmds, m.syncTicks())
	}
	return m, tea.Batch(cmds...)
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, At: t} })
}
