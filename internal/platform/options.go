package platform

import (
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/aretw0/keeper/pkg/adapters/fs"
	"github.com/aretw0/keeper/pkg/core"
)

// options holds the internal configuration for opening a book.
type options struct {
	store        *fs.Store
	logger       *slog.Logger
	clock        clock.Clock
	file         string
	systemDir    string
	autoInit     bool
	versioning   bool
	forceTemp    bool
	mustExist    bool
	strict       bool
	readOnly     bool
	devSafety    bool
	errorHandler func(error)
	serializers  map[string]fs.Serializer
	matchers     map[string]core.Matcher
}

// Option defines a functional option for opening a book.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety:   true,
		serializers: make(map[string]fs.Serializer),
		matchers:    make(map[string]core.Matcher),
	}
}

// WithAutoInit creates the book directory (and git repository when versioned)
// if it does not exist.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithVersioning enables or disables git versioning of the book.
// Versioning is off by default.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.versioning = enabled
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithMustExist ensures the book directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithFile sets the book file name (default "contacts.yaml"). The extension
// selects the serializer.
func WithFile(name string) Option {
	return func(o *options) {
		o.file = name
	}
}

// WithSystemDir sets the hidden directory name (default ".keeper").
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.systemDir = name
	}
}

// WithStrict rejects unknown fields when decoding the book.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithReadOnly opens the book without ever writing to disk.
// Save returns core.ErrReadOnly. The book directory must already exist.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or
// `go test`. Enabled by default.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithLogger sets the logger for the store and the directory.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the directory clock used for birthday windows.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithStore injects a preconfigured store. Path related options are ignored.
func WithStore(store *fs.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithSerializer registers a serializer for a file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}

// WithMatcher registers an extra FindByField category.
func WithMatcher(field string, m core.Matcher) Option {
	return func(o *options) {
		o.matchers[field] = m
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

func (o *options) directoryOptions() []core.Option {
	var opts []core.Option
	if o.clock != nil {
		opts = append(opts, core.WithClock(o.clock))
	}
	if o.logger != nil {
		opts = append(opts, core.WithLogger(o.logger))
	}
	for field, m := range o.matchers {
		opts = append(opts, core.WithMatcher(field, m))
	}
	return opts
}
