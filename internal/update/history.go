package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/clockd/internal/dispatch"
	"github.com/sandeepkv93/clockd/internal/storage"
)

const historyLimit = 20

func loadHistoryCmd(repo storage.Repository) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		runs, err := repo.ListRuns(ctx, storage.RunListFilter{Limit: historyLimit})
		if err != nil {
			return HistoryLoadedMsg{Err: fmt.Errorf("list runs: %w", err)}
		}
		summary, err := repo.SummarizeRuns(ctx, "")
		if err != nil {
			return HistoryLoadedMsg{Runs: runs, Err: fmt.Errorf("summarize runs: %w", err)}
		}
		return HistoryLoadedMsg{Runs: runs, Summary: summary}
	}
}

func (m Model) toggleHistory() (Model, tea.Cmd) {
	m.HistoryVisible = !m.HistoryVisible
	if !m.HistoryVisible {
		return m, nil
	}
	return m, loadHistoryCmd(m.history)
}

func (m Model) onHistoryLoaded(msg HistoryLoadedMsg) Model {
	m.History.Loaded = true
	m.History.Runs = msg.Runs
	m.History.Summary = msg.Summary
	m.History.Err = ""
	if msg.Err != nil {
		m.History.Err = msg.Err.Error()
	}
	return m
}

func waitForDeliveryCmd(ch <-chan dispatch.Result) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return DeliveryResultMsg{Result: res}
	}
}

func (m Model) onDeliveryResult(msg DeliveryResultMsg) (Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if m.dispatcher != nil {
		cmds = append(cmds, waitForDeliveryCmd(m.dispatcher.C()))
	}
	res := msg.Result
	if res.Err != nil {
		m.DeliveryFailures++
		m.LastError = res.Err
		m.Status = StatusBar{Text: fmt.Sprintf("delivery to %s failed: %v", res.Sink, res.Err), IsError: true}
		m.notify("Delivery", res.Err.Error(), "error")
		return m, tea.Batch(cmds...)
	}
	if res.Sink == "history" && m.HistoryVisible {
		cmds = append(cmds, loadHistoryCmd(m.history))
	}
	return m, tea.Batch(cmds...)
}

func kindLabel(kind string) string {
	switch kind {
	case storage.KindCountdownFinished:
		return "countdown"
	case storage.KindStopwatchStopped:
		return "timer"
	default:
		return kind
	}
}
