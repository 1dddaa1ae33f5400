// Package config loads and provides access to worklog's settings
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Export       ExportConfig       `mapstructure:"export"`
		Display      DisplayConfig      `mapstructure:"display"`
		Notification NotificationConfig `mapstructure:"notifications"`
		Settings     SettingsConfig     `mapstructure:"settings"`
	}

	// ExportConfig holds export-related settings
	ExportConfig struct {
		// Strict refuses to export while a session is open instead of
		// rendering it with empty fields.
		Strict bool `mapstructure:"strict"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		// Cmd is an arbitrary command executed after a session is
		// closed.
		Cmd string `mapstructure:"cmd"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v1.0.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	return cfg, nil
}
