package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/views"
)

const guideMarkdown = `# clockd

Three modes share one readout:

- **Current Time** ticks every second.
- **Timer** counts up while running. Stopping keeps the value.
- **Countdown** counts down from HH:MM:SS and stops at zero.

Switching modes never resets the other modes. Press **f** for fullscreen and
**esc** to leave it.`

func (m *Model) initBubbleComponents() {
	for _, f := range model.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.Placeholder()
		in.Width = 6
		in.CharLimit = m.fieldCharLimit()
		m.fieldInputs[f] = in
	}

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.countdownProgress = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	m.countdownProgress.Width = 32

	m.loadingSpinner = spinner.New()
	m.loadingSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.guideViewport = viewport.New(50, 10)
	m.guideViewport.SetContent(views.RenderMarkdown(guideMarkdown))

	cols := []table.Column{
		{Title: "Ended", Width: 19},
		{Title: "Kind", Width: 10},
		{Title: "Duration", Width: 9},
	}
	m.historyTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(8))
}

// syncBubbleData pushes model state into the bubble components before a
// render.
func (m *Model) syncBubbleData() {
	for _, f := range model.Fields {
		if f == m.Countdown.Focus {
			m.fieldInputs[f].Focus()
		} else {
			m.fieldInputs[f].Blur()
		}
	}

	rows := make([]table.Row, 0, len(m.History.Runs))
	for _, run := range m.History.Runs {
		rows = append(rows, table.Row{
			run.EndedAt.Local().Format("2006-01-02 15:04:05"),
			kindLabel(run.Kind),
			model.FormatHMS(run.DurationSec),
		})
	}
	m.historyTable.SetRows(rows)

	if m.Width > 0 {
		m.countdownProgress.Width = min(max(m.Width/3, 10), 40)
	}
}

func (m Model) fieldCharLimit() int {
	if m.ClampFields {
		return 2
	}
	return 6
}
