package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.modeBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	global := m.toKeyBindings(m.globalBindings())
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentMode: m.Mode.Label(),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: global,
			full:  [][]key.Binding{global},
		}),
		Guide: m.guideViewport.View(),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Clock, Action: "current time"},
		{Key: m.Keys.Stopwatch, Action: "timer"},
		{Key: m.Keys.Countdown, Action: "countdown"},
		{Key: m.Keys.CycleMode, Action: "next mode"},
		{Key: m.Keys.Fullscreen, Action: "fullscreen"},
		{Key: "/", Action: "command palette"},
		{Key: m.Keys.History, Action: "history"},
		{Key: m.Keys.Help, Action: "help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) modeBindings() []KeyBinding {
	switch m.Mode {
	case model.ModeClock:
		return []KeyBinding{
			{Key: m.Keys.Format, Action: "toggle 12h/24h"},
		}
	case model.ModeStopwatch:
		return []KeyBinding{
			{Key: m.Keys.Start, Action: "start timer"},
			{Key: m.Keys.Stop, Action: "stop timer (value is kept)"},
		}
	case model.ModeCountdown:
		return []KeyBinding{
			{Key: "tab/shift+tab", Action: "move between HH/MM/SS"},
			{Key: "0-9/backspace", Action: "edit focused field"},
			{Key: "enter/" + m.Keys.Start, Action: "start countdown"},
			{Key: m.Keys.Stop, Action: "stop countdown"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) toKeyBindings(in []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(in))
	for _, kb := range in {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
