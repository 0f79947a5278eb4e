package views

import (
	"strings"
	"testing"
)

func TestRenderBigSingleDigit(t *testing.T) {
	want := "███\n█ █\n█ █\n█ █\n███"
	if got := RenderBig("0", 1); got != want {
		t.Fatalf("RenderBig(0) =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderBigScaleDoublesBothAxes(t *testing.T) {
	small := strings.Split(RenderBig("12:34", 1), "\n")
	big := strings.Split(RenderBig("12:34", 2), "\n")
	if len(small) != 5 || len(big) != 10 {
		t.Fatalf("unexpected row counts: %d / %d", len(small), len(big))
	}
	if got := []rune(big[0]); len(got) < 2*len([]rune(strings.TrimRight(small[0], " "))) {
		t.Fatalf("scaled row too narrow: %q vs %q", big[0], small[0])
	}
	if big[0] != big[1] {
		t.Fatalf("rows should repeat at scale 2: %q vs %q", big[0], big[1])
	}
}

func TestRenderBigUnknownRunesAndEmpty(t *testing.T) {
	if RenderBig("", 1) != "" {
		t.Fatal("empty text should render empty")
	}
	out := RenderBig("1?1", 1)
	if strings.Count(out, "\n") != 4 {
		t.Fatalf("expected 5 rows, got %q", out)
	}
	if RenderBig("pm", 0) != RenderBig("PM", 1) {
		t.Fatal("lowercase and zero scale should normalize")
	}
}

func TestRenderModeSelectorMarksActive(t *testing.T) {
	out := RenderModeSelector([]ModeTab{
		{Key: "c", Label: "Current Time"},
		{Key: "w", Label: "Timer", Active: true},
		{Key: "d", Label: "Countdown"},
	})
	if !strings.Contains(out, "> [w] Timer") {
		t.Fatalf("active tab not marked: %q", out)
	}
	if strings.Contains(out, "> [c]") {
		t.Fatalf("inactive tab marked: %q", out)
	}
}

func TestRenderCountdownPanel(t *testing.T) {
	out := RenderCountdownPanel(CountdownPanelData{
		Readout: "00:00:05",
		Running: true,
		Fields: []CountdownFieldData{
			{Label: "HH", View: "0"},
			{Label: "MM", View: "0", Focused: true},
			{Label: "SS", View: "5"},
		},
		Config:       "00:00:05",
		ProgressView: "[##--]",
		ProgressPct:  50,
		Finished:     2,
	})
	for _, want := range []string{"readout: 00:00:05", "state: running", ">MM", "progress: [##--] 50%", "finished runs: 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRenderHistoryPanel(t *testing.T) {
	if out := RenderHistoryPanel(HistoryPanelData{}); !strings.Contains(out, "disabled") {
		t.Fatalf("expected disabled text, got %q", out)
	}
	out := RenderHistoryPanel(HistoryPanelData{Enabled: true, Count: 0, Total: "00:00:00"})
	if !strings.Contains(out, "(no runs recorded)") {
		t.Fatalf("expected empty text, got %q", out)
	}
	out = RenderHistoryPanel(HistoryPanelData{Enabled: true, Count: 1, Total: "00:01:00", TableView: "TABLE", ErrorText: "db locked"})
	if !strings.Contains(out, "TABLE") || !strings.Contains(out, "error: db locked") {
		t.Fatalf("unexpected history panel: %q", out)
	}
}

func TestRenderAppAndPlaceholder(t *testing.T) {
	out := RenderApp(AppData{
		Header:     "clockd | mode: Timer",
		Body:       "readout: 00:00:03",
		StatusLine: "status: running",
		Footer:     "keys",
	})
	for _, want := range []string{"clockd | mode: Timer", "readout: 00:00:03", "status: running", "keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if got := RenderPlaceholder(""); got != "Loading..." {
		t.Fatalf("unexpected placeholder %q", got)
	}
}

func TestRenderFullscreenCenters(t *testing.T) {
	big := RenderBig("00:00:01", 2)
	out := RenderFullscreen(big, 120, 30)
	lines := strings.Split(out, "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[10], " ") {
		t.Fatalf("expected horizontal padding, got %q", lines[10])
	}
	if RenderFullscreen("x", 0, 0) != "x" {
		t.Fatal("unknown size should return the bare readout")
	}
}

func TestRenderCommandPalette(t *testing.T) {
	if RenderCommandPalette(false, "x", nil) != "" {
		t.Fatal("inactive palette should render empty")
	}
	out := RenderCommandPalette(true, "st", []string{"start", "stop"})
	if !strings.Contains(out, "command: /st") || !strings.Contains(out, "start, stop") {
		t.Fatalf("unexpected palette: %q", out)
	}
}
