// Package config loads clockd settings from defaults, an optional config
// file and CLOCKD_ environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/sandeepkv93/clockd/internal/model"
)

// Config holds application configuration.
type Config struct {
	UI        UIConfig
	Countdown CountdownConfig
	Notify    NotifyConfig
	MQTT      MQTTConfig
	History   HistoryConfig
	Log       LogConfig
}

type UIConfig struct {
	StartMode       string `mapstructure:"start_mode"`
	ClockFormat     string `mapstructure:"clock_format"`
	StartFullscreen bool   `mapstructure:"start_fullscreen"`
}

type CountdownConfig struct {
	Hours       int
	Minutes     int
	Seconds     int
	ClampFields bool `mapstructure:"clamp_fields"`
}

type NotifyConfig struct {
	Desktop bool
	Buffer  int
}

// MQTTConfig is disabled when Broker is empty.
type MQTTConfig struct {
	Broker   string
	Topic    string
	ClientID string `mapstructure:"client_id"`
}

// HistoryConfig is disabled when Path is empty.
type HistoryConfig struct {
	Path string
}

type LogConfig struct {
	File string
}

const (
	defaultBuffer   = 16
	defaultTopic    = "clockd/events"
	defaultClientID = "clockd"
)

func Default() Config {
	return Config{
		UI: UIConfig{
			StartMode:   string(model.ModeClock),
			ClockFormat: string(model.ClockFormat24h),
		},
		Countdown: CountdownConfig{ClampFields: true},
		Notify:    NotifyConfig{Buffer: defaultBuffer},
		MQTT:      MQTTConfig{Topic: defaultTopic, ClientID: defaultClientID},
	}
}

// Load reads configuration using $CLOCKD_CONFIG or the default path.
func Load() (Config, error) {
	return LoadFile(os.Getenv("CLOCKD_CONFIG"))
}

// LoadOrDefault loads path (or the $CLOCKD_CONFIG / default location when
// path is empty). On any error it returns Default() together with the error
// so the caller can report it and keep going.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		path = os.Getenv("CLOCKD_CONFIG")
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

// LoadFile reads configuration from path. An empty path searches
// ~/.config/clockd for config.*; a missing default file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	def := Default()

	v.SetDefault("ui.start_mode", def.UI.StartMode)
	v.SetDefault("ui.clock_format", def.UI.ClockFormat)
	v.SetDefault("ui.start_fullscreen", def.UI.StartFullscreen)
	v.SetDefault("countdown.hours", 0)
	v.SetDefault("countdown.minutes", 0)
	v.SetDefault("countdown.seconds", 0)
	v.SetDefault("countdown.clamp_fields", def.Countdown.ClampFields)
	v.SetDefault("notify.desktop", false)
	v.SetDefault("notify.buffer", def.Notify.Buffer)
	v.SetDefault("mqtt.broker", "")
	v.SetDefault("mqtt.topic", def.MQTT.Topic)
	v.SetDefault("mqtt.client_id", def.MQTT.ClientID)
	v.SetDefault("history.path", "")
	v.SetDefault("log.file", "")

	if path != "" {
		v.SetConfigFile(path)
		// The format follows the extension; bare files are read as TOML.
		if filepath.Ext(path) == "" {
			v.SetConfigType("toml")
		}
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "clockd"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLOCKD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return Normalize(c), nil
}

// Normalize replaces invalid values with defaults.
func Normalize(c Config) Config {
	def := Default()

	c.UI.StartMode = strings.TrimSpace(c.UI.StartMode)
	if mode, err := model.ParseMode(c.UI.StartMode); err == nil {
		c.UI.StartMode = string(mode)
	} else {
		c.UI.StartMode = def.UI.StartMode
	}
	c.UI.ClockFormat = string(model.ParseClockFormat(c.UI.ClockFormat))

	cd := model.CountdownConfig{Hours: c.Countdown.Hours, Minutes: c.Countdown.Minutes, Seconds: c.Countdown.Seconds}
	if c.Countdown.ClampFields {
		cd = cd.Clamped()
	}
	c.Countdown.Hours = max(cd.Hours, 0)
	c.Countdown.Minutes = max(cd.Minutes, 0)
	c.Countdown.Seconds = max(cd.Seconds, 0)

	if c.Notify.Buffer <= 0 {
		c.Notify.Buffer = def.Notify.Buffer
	}
	c.MQTT.Broker = strings.TrimSpace(c.MQTT.Broker)
	if strings.TrimSpace(c.MQTT.Topic) == "" {
		c.MQTT.Topic = def.MQTT.Topic
	}
	if strings.TrimSpace(c.MQTT.ClientID) == "" {
		c.MQTT.ClientID = def.MQTT.ClientID
	}
	c.History.Path = strings.TrimSpace(c.History.Path)
	c.Log.File = strings.TrimSpace(c.Log.File)
	return c
}

// Mode returns the parsed start mode.
func (c Config) Mode() model.Mode {
	mode, err := model.ParseMode(c.UI.StartMode)
	if err != nil {
		return model.ModeClock
	}
	return mode
}

func (c Config) ClockFormat() model.ClockFormat {
	return model.ParseClockFormat(c.UI.ClockFormat)
}

func (c Config) InitialCountdown() model.CountdownConfig {
	return model.CountdownConfig{
		Hours:   c.Countdown.Hours,
		Minutes: c.Countdown.Minutes,
		Seconds: c.Countdown.Seconds,
	}
}
