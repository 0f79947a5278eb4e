package model

import (
	"testing"
	"time"
)

func TestFormatHMS(t *testing.T) {
	cases := map[int]string{
		0:      "00:00:00",
		3:      "00:00:03",
		61:     "00:01:01",
		3600:   "01:00:00",
		90061:  "25:01:01",
		-10:    "00:00:00",
		359999: "99:59:59",
	}
	for in, want := range cases {
		if got := FormatHMS(in); got != want {
			t.Fatalf("FormatHMS(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	at := time.Date(2026, 10, 16, 14, 5, 9, 0, time.UTC)
	if got := FormatClock(at, ClockFormat24h); got != "14:05:09" {
		t.Fatalf("24h clock = %q", got)
	}
	if got := FormatClock(at, ClockFormat12h); got != "02:05:09 PM" {
		t.Fatalf("12h clock = %q", got)
	}
	if ParseClockFormat("12H") != ClockFormat12h || ParseClockFormat("weird") != ClockFormat24h {
		t.Fatal("unexpected clock format parsing")
	}
}
