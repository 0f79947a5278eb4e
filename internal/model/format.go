package model

import (
	"fmt"
	"strings"
	"time"
)

type ClockFormat string

const (
	ClockFormat24h ClockFormat = "24h"
	ClockFormat12h ClockFormat = "12h"
)

func (f ClockFormat) IsValid() bool {
	return f == ClockFormat24h || f == ClockFormat12h
}

// Layout is the time.Format layout for the clock readout.
func (f ClockFormat) Layout() string {
	if f == ClockFormat12h {
		return "03:04:05 PM"
	}
	return "15:04:05"
}

func ParseClockFormat(raw string) ClockFormat {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "12h", "12", "ampm":
		return ClockFormat12h
	default:
		return ClockFormat24h
	}
}

// FormatHMS renders seconds as zero-padded HH:MM:SS. Hours are not wrapped.
func FormatHMS(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	hrs := totalSec / 3600
	mins := (totalSec % 3600) / 60
	secs := totalSec % 60
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

func FormatClock(t time.Time, f ClockFormat) string {
	return t.Format(f.Layout())
}
