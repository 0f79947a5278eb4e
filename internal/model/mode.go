package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMode = errors.New("model: invalid mode")

type Mode string

const (
	ModeClock     Mode = "clock"
	ModeStopwatch Mode = "stopwatch"
	ModeCountdown Mode = "countdown"
)

// Modes lists every mode in selector order.
var Modes = []Mode{ModeClock, ModeStopwatch, ModeCountdown}

func (m Mode) IsValid() bool {
	switch m {
	case ModeClock, ModeStopwatch, ModeCountdown:
		return true
	default:
		return false
	}
}

// Label is the human-facing name shown in the mode selector.
func (m Mode) Label() string {
	switch m {
	case ModeClock:
		return "Current Time"
	case ModeStopwatch:
		return "Timer"
	case ModeCountdown:
		return "Countdown"
	default:
		return string(m)
	}
}

// Next returns the mode after m in selector order, wrapping around.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeClock
}

// ParseMode accepts canonical names plus the short and legacy aliases.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "clock", "time", "current-time", "now":
		return ModeClock, nil
	case "stopwatch", "timer", "sw", "elapsed":
		return ModeStopwatch, nil
	case "countdown", "cd", "count":
		return ModeCountdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, raw)
	}
}
