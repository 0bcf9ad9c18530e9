// Package config loads keeper settings from defaults, keeper.yaml and
// KEEPER_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the resolved keeper configuration.
type Config struct {
	Book      BookConfig      `mapstructure:"book"`
	Birthdays BirthdaysConfig `mapstructure:"birthdays"`
	Log       LogConfig       `mapstructure:"log"`
}

// BookConfig locates and configures the contact book.
type BookConfig struct {
	Path       string `mapstructure:"path"`
	File       string `mapstructure:"file"`
	Versioning bool   `mapstructure:"versioning"`
	Strict     bool   `mapstructure:"strict"`
	ReadOnly   bool   `mapstructure:"read_only"`
}

// BirthdaysConfig holds the default birthday window.
type BirthdaysConfig struct {
	Window int `mapstructure:"window"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Book: BookConfig{
			Path:       ".",
			File:       "contacts.yaml",
			Versioning: false,
		},
		Birthdays: BirthdaysConfig{Window: 7},
		Log:       LogConfig{Level: "info"},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Birthdays.Window < 0 {
		return fmt.Errorf("birthdays.window must be >= 0, got %d", c.Birthdays.Window)
	}
	if strings.TrimSpace(c.Book.File) == "" {
		return fmt.Errorf("book.file cannot be empty")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return level, nil
}
