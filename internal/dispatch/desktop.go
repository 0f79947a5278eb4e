package dispatch

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/sandeepkv93/clockd/internal/model"
)

// DesktopNotifier shows one notification. Send must return once ctx is done.
type DesktopNotifier interface {
	Send(ctx context.Context, title, body string) error
}

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(ctx context.Context, title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.CommandContext(ctx, "notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.CommandContext(ctx, "osascript", "-e", script).Run()
	default:
		return nil
	}
}

// DesktopSink shows completion events as desktop notifications.
type DesktopSink struct {
	Notifier DesktopNotifier
}

func (DesktopSink) Name() string { return "desktop" }

func (s DesktopSink) Deliver(ctx context.Context, ev Event) error {
	if s.Notifier == nil {
		return nil
	}
	title, body := Describe(ev)
	return s.Notifier.Send(ctx, title, body)
}

// Describe renders the human-facing title and body for an event.
func Describe(ev Event) (string, string) {
	switch ev.Kind {
	case KindCountdownFinished:
		return "Countdown finished!", fmt.Sprintf("%s countdown completed", model.FormatHMS(ev.DurationSec))
	case KindStopwatchStopped:
		return "Timer stopped", fmt.Sprintf("segment of %s recorded", model.FormatHMS(ev.DurationSec))
	default:
		return "clockd", string(ev.Kind)
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
