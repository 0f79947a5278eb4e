package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/clockd/internal/model"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLOCKD_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode() != model.ModeClock || cfg.ClockFormat() != model.ClockFormat24h {
		t.Fatalf("unexpected ui defaults: %+v", cfg.UI)
	}
	if !cfg.Countdown.ClampFields || cfg.Notify.Buffer != 16 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.MQTT.Broker != "" || cfg.MQTT.Topic != "clockd/events" || cfg.MQTT.ClientID != "clockd" {
		t.Fatalf("unexpected mqtt defaults: %+v", cfg.MQTT)
	}
	if cfg.History.Path != "" || cfg.Log.File != "" {
		t.Fatalf("history and log should be disabled by default: %+v", cfg)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[ui]
start_mode = "timer"
clock_format = "12h"
start_fullscreen = true

[countdown]
hours = 1
minutes = 30
seconds = 5

[mqtt]
broker = "tcp://localhost:1883"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CLOCKD_CONFIG", path)
	t.Setenv("CLOCKD_NOTIFY_DESKTOP", "true")
	t.Setenv("CLOCKD_HISTORY_PATH", filepath.Join(dir, "history.db"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode() != model.ModeStopwatch {
		t.Fatalf("expected alias timer to normalize to stopwatch, got %q", cfg.UI.StartMode)
	}
	if cfg.ClockFormat() != model.ClockFormat12h || !cfg.UI.StartFullscreen {
		t.Fatalf("unexpected ui config: %+v", cfg.UI)
	}
	if got := cfg.InitialCountdown(); got != (model.CountdownConfig{Hours: 1, Minutes: 30, Seconds: 5}) {
		t.Fatalf("unexpected countdown: %+v", got)
	}
	if cfg.MQTT.Broker != "tcp://localhost:1883" {
		t.Fatalf("unexpected broker: %q", cfg.MQTT.Broker)
	}
	if !cfg.Notify.Desktop || cfg.History.Path == "" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadFileMissingExplicitPathFails(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestNormalizeReplacesInvalidValues(t *testing.T) {
	cfg := Normalize(Config{
		UI:        UIConfig{StartMode: "lap", ClockFormat: "36h"},
		Countdown: CountdownConfig{Hours: 99, Minutes: -4, Seconds: 75, ClampFields: true},
		Notify:    NotifyConfig{Buffer: -1},
		MQTT:      MQTTConfig{Broker: "  "},
	})
	if cfg.UI.StartMode != "clock" || cfg.UI.ClockFormat != "24h" {
		t.Fatalf("unexpected ui normalization: %+v", cfg.UI)
	}
	if cfg.Countdown.Hours != 23 || cfg.Countdown.Minutes != 0 || cfg.Countdown.Seconds != 59 {
		t.Fatalf("expected clamped countdown, got %+v", cfg.Countdown)
	}
	if cfg.Notify.Buffer != 16 || cfg.MQTT.Broker != "" || cfg.MQTT.Topic != "clockd/events" {
		t.Fatalf("unexpected normalization: %+v", cfg)
	}
}

func TestNormalizeWithoutClampKeepsLargeValues(t *testing.T) {
	cfg := Normalize(Config{Countdown: CountdownConfig{Minutes: 90, Seconds: -3}})
	if cfg.Countdown.Minutes != 90 || cfg.Countdown.Seconds != 0 {
		t.Fatalf("unexpected unclamped countdown: %+v", cfg.Countdown)
	}
}

func TestLoadYAMLFromDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CLOCKD_CONFIG", "")
	dir := filepath.Join(home, ".config", "clockd")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	body := "ui:\n  start_mode: countdown\ncountdown:\n  seconds: 30\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if cfg.Mode() != model.ModeCountdown || cfg.Countdown.Seconds != 30 {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
}

func TestLoadExtensionlessFileReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clockdrc")
	if err := os.WriteFile(path, []byte("[ui]\nclock_format = \"12h\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ClockFormat() != model.ClockFormat12h {
		t.Fatalf("expected 12h, got %q", cfg.UI.ClockFormat)
	}
}

func TestLoadOrDefaultFallsBackOnParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[ui\nstart_mode = "), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadOrDefault(path)
	if err == nil {
		t.Fatal("expected parse error to be reported")
	}
	if cfg != Default() {
		t.Fatalf("expected defaults on error, got %+v", cfg)
	}
}
