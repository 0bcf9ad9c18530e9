package core

import (
	"log/slog"

	"github.com/benbjohnson/clock"
)

// Option configures a Directory.
type Option func(*Directory)

// WithClock sets the time source used for birthday arithmetic.
func WithClock(c clock.Clock) Option {
	return func(d *Directory) {
		d.clock = c
	}
}

// WithLogger sets the logger for the directory.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Directory) {
		d.logger = logger
	}
}

// WithMatcher registers an additional search category, see RegisterMatcher.
func WithMatcher(field string, m Matcher) Option {
	return func(d *Directory) {
		d.RegisterMatcher(field, m)
	}
}
