package keeper

import (
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/aretw0/keeper/internal/platform"
	"github.com/aretw0/keeper/pkg/adapters/fs"
	"github.com/aretw0/keeper/pkg/core"
)

// --- Types ---

// Book is an opened contact book: a core.Directory bound to its store.
type Book = platform.Book

// Record is a public alias for core.Record.
type Record = core.Record

// Note is a public alias for core.Note.
type Note = core.Note

// --- Configuration ---

// Option defines a functional option for opening a book.
type Option = platform.Option

// WithAutoInit creates the book directory (and git repository when versioned).
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithVersioning commits every save to git.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist ensures the book directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithFile sets the book file name. Its extension selects the format.
func WithFile(name string) Option {
	return platform.WithFile(name)
}

// WithSystemDir sets the hidden directory name (e.g. ".keeper").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithStrict rejects unknown fields in the book file.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithReadOnly opens the book without write access.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety toggles the temp-directory sandbox for `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock sets the clock used for birthday windows.
func WithClock(c clock.Clock) Option {
	return platform.WithClock(c)
}

// WithStore injects a preconfigured store.
func WithStore(store *fs.Store) Option {
	return platform.WithStore(store)
}

// WithSerializer registers a book format for a file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// WithMatcher registers an extra search field.
func WithMatcher(field string, m core.Matcher) Option {
	return platform.WithMatcher(field, m)
}

// WithWatcherErrorHandler receives errors raised while watching the book.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// Open loads the book stored at path.
func Open(path string, opts ...Option) (*Book, error) {
	return platform.Open(path, opts...)
}

// Init prepares a book directory without loading it.
func Init(path string, opts ...Option) (*fs.Store, error) {
	return platform.Init(path, opts...)
}

// NewDirectory creates an empty in-memory directory.
func NewDirectory(opts ...core.Option) *core.Directory {
	return core.NewDirectory(opts...)
}

// --- Safety & Utils ---

// ResolveBookPath determines the actual path for the book based on safety rules.
func ResolveBookPath(userPath string, forceTemp bool) string {
	return platform.ResolveBookPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindBookRoot looks upwards from startDir for a book directory.
func FindBookRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// NewRecord creates a record with the given name.
func NewRecord(name string) *Record {
	return core.NewRecord(name)
}

// WithDirectoryClock sets the clock of a directory built with NewDirectory.
func WithDirectoryClock(c clock.Clock) core.Option {
	return core.WithClock(c)
}

// --- Change reasons ---

const (
	CommitTypeFeat     = platform.CommitTypeFeat
	CommitTypeFix      = platform.CommitTypeFix
	CommitTypeDocs     = platform.CommitTypeDocs
	CommitTypeStyle    = platform.CommitTypeStyle
	CommitTypeRefactor = platform.CommitTypeRefactor
	CommitTypeChore    = platform.CommitTypeChore
)

// FormatChangeReason builds a Conventional Commit message for Book.Save.
func FormatChangeReason(ctype, scope, subject, body string) string {
	return platform.FormatChangeReason(ctype, scope, subject, body)
}
