package model

import (
	"errors"
	"testing"
)

func TestParseModeAliases(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
	}{
		{"clock", ModeClock},
		{"current-time", ModeClock},
		{" Timer ", ModeStopwatch},
		{"stopwatch", ModeStopwatch},
		{"COUNTDOWN", ModeCountdown},
		{"cd", ModeCountdown},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseModeInvalid(t *testing.T) {
	_, err := ParseMode("alarm")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got: %v", err)
	}
	if Mode("alarm").IsValid() {
		t.Fatal("expected alarm to be invalid")
	}
}

func TestModeNextWraps(t *testing.T) {
	if ModeClock.Next() != ModeStopwatch || ModeStopwatch.Next() != ModeCountdown || ModeCountdown.Next() != ModeClock {
		t.Fatal("unexpected mode cycle order")
	}
	if Mode("bogus").Next() != ModeClock {
		t.Fatal("expected unknown mode to cycle to clock")
	}
}
