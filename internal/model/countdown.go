package model

import (
	"fmt"
	"strings"
)

// Field identifies one of the countdown HH/MM/SS inputs.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
	FieldSeconds
)

// Fields lists the countdown inputs in focus order.
var Fields = []Field{FieldHours, FieldMinutes, FieldSeconds}

func (f Field) Placeholder() string {
	switch f {
	case FieldHours:
		return "HH"
	case FieldMinutes:
		return "MM"
	default:
		return "SS"
	}
}

// Max is the input-level upper bound of the field.
func (f Field) Max() int {
	if f == FieldHours {
		return 23
	}
	return 59
}

func (f Field) Next() Field { return Fields[(int(f)+1)%len(Fields)] }

func (f Field) Prev() Field { return Fields[(int(f)+len(Fields)-1)%len(Fields)] }

type CountdownConfig struct {
	Hours   int
	Minutes int
	Seconds int
}

func (c CountdownConfig) Get(f Field) int {
	switch f {
	case FieldHours:
		return c.Hours
	case FieldMinutes:
		return c.Minutes
	default:
		return c.Seconds
	}
}

func (c CountdownConfig) With(f Field, v int) CountdownConfig {
	switch f {
	case FieldHours:
		c.Hours = v
	case FieldMinutes:
		c.Minutes = v
	default:
		c.Seconds = v
	}
	return c
}

// Clamped limits every field to its input range.
func (c CountdownConfig) Clamped() CountdownConfig {
	for _, f := range Fields {
		c = c.With(f, clamp(c.Get(f), 0, f.Max()))
	}
	return c
}

// TotalSeconds is hours*3600 + minutes*60 + seconds. With clampFields each
// field is limited to its range first; otherwise out-of-range values count as
// typed. The result is never negative.
func (c CountdownConfig) TotalSeconds(clampFields bool) int {
	if clampFields {
		c = c.Clamped()
	}
	total := c.Hours*3600 + c.Minutes*60 + c.Seconds
	if total < 0 {
		return 0
	}
	return total
}

func (c CountdownConfig) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// MaxFieldValue is the largest value a countdown field holds. It matches the
// six-character input width of an unclamped field.
const MaxFieldValue = 999_999

// ParseField coerces raw field input to a non-negative integer. Leading
// digits are used and anything after them is ignored; empty, non-numeric or
// negative input yields 0. Oversized input saturates at MaxFieldValue.
func ParseField(raw string) int {
	n, _ := ParseFieldChecked(raw)
	return n
}

// ParseFieldChecked is ParseField that also reports false when the input
// exceeded MaxFieldValue.
func ParseFieldChecked(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > MaxFieldValue {
			return MaxFieldValue, false
		}
	}
	return n, true
}

// ParseCountdown reads "HH:MM:SS", "MM:SS", "SS" or three separate fields.
func ParseCountdown(parts ...string) CountdownConfig {
	if len(parts) == 1 && strings.Contains(parts[0], ":") {
		parts = strings.Split(parts[0], ":")
	}
	var cfg CountdownConfig
	switch len(parts) {
	case 0:
	case 1:
		cfg.Seconds = ParseField(parts[0])
	case 2:
		cfg.Minutes = ParseField(parts[0])
		cfg.Seconds = ParseField(parts[1])
	default:
		cfg.Hours = ParseField(parts[0])
		cfg.Minutes = ParseField(parts[1])
		cfg.Seconds = ParseField(parts[2])
	}
	return cfg
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
