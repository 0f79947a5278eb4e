package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/clockd/internal/dispatch"
	"github.com/sandeepkv93/clockd/internal/model"
)

func (m Model) startStopwatch() (Model, tea.Cmd) {
	if m.Stopwatch.Running {
		return m, nil
	}
	m.Stopwatch.Running = true
	m.Stopwatch.SegmentStart = m.clock.Now()
	m.Stopwatch.SegmentStartSec = m.Stopwatch.ElapsedSec
	m.Status = StatusBar{Text: "timer running"}
	return m, m.syncTicks()
}

// stopStopwatch keeps the elapsed value and records the finished segment.
func (m Model) stopStopwatch() (Model, tea.Cmd) {
	if !m.Stopwatch.Running {
		return m, nil
	}
	m.Stopwatch.Running = false
	segment := m.Stopwatch.ElapsedSec - m.Stopwatch.SegmentStartSec
	m.Status = StatusBar{Text: fmt.Sprintf("timer stopped at %s", model.FormatHMS(m.Stopwatch.ElapsedSec))}
	m.enqueueCompletion(dispatch.KindStopwatchStopped, m.Stopwatch.SegmentStart, segment)
	return m, m.syncTicks()
}
