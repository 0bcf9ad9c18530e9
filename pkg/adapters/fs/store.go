// Package fs persists a contact Directory as a single file on the local
// filesystem, optionally versioned with git.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/keeper/pkg/core"
	"github.com/aretw0/keeper/pkg/git"
)

const (
	// DefaultFile is the book file name used when Config.File is empty.
	DefaultFile = "contacts.yaml"
	// DefaultSystemDir is the hidden directory name used when Config.SystemDir is empty.
	DefaultSystemDir = ".keeper"
)

// Config holds the configuration for the filesystem store.
type Config struct {
	Path         string // Directory holding the book
	File         string // Book file name, relative to Path (e.g. "contacts.yaml")
	AutoInit     bool
	MustExist    bool
	Gitless      bool
	SystemDir    string // e.g. ".keeper"
	Strict       bool
	ReadOnly     bool
	Logger       *slog.Logger
	ErrorHandler func(error) // Receives watcher errors
}

// Store loads and saves a core.Directory.
type Store struct {
	Path        string
	git         *git.Client
	config      Config
	serializers map[string]Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.File == "" {
		config.File = DefaultFile
	}
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	return &Store{
		Path:        config.Path,
		git:         git.NewClient(config.Path, config.SystemDir+".lock", config.Logger),
		config:      config,
		serializers: DefaultSerializers(config.Strict),
	}
}

// RegisterSerializer registers a serializer for a file extension (e.g. ".toml").
func (s *Store) RegisterSerializer(ext string, serializer Serializer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serializers[normalizeExt(ext)] = serializer
}

// File returns the absolute path of the book file.
func (s *Store) File() string {
	return filepath.Join(s.Path, s.config.File)
}

// Initialize prepares the book directory and, unless gitless, the git repository.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("book path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("book path is not a directory: %s", s.Path)
		}
	} else if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create book directory: %w", err)
	}

	if s.config.Gitless || s.config.ReadOnly {
		return nil
	}

	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}

	wasNewRepo := false
	if !s.git.IsRepo(ctx) {
		if !s.config.AutoInit {
			return fmt.Errorf("path is not a git repository: %s", s.Path)
		}
		if err := s.git.Init(ctx); err != nil {
			return fmt.Errorf("failed to git init: %w", err)
		}
		wasNewRepo = true
	}

	mod, err := s.ensureIgnore()
	if err != nil {
		return fmt.Errorf("failed to ensure .gitignore: %w", err)
	}

	if mod && wasNewRepo {
		if err := s.git.Add(ctx, ".gitignore"); err != nil {
			return fmt.Errorf("failed to add .gitignore: %w", err)
		}
		if err := s.git.Commit(ctx, fmt.Sprintf("chore: configure %s ignore", s.config.SystemDir)); err != nil {
			return fmt.Errorf("failed to commit .gitignore: %w", err)
		}
	}
	return nil
}

// ensureIgnore keeps the system directory and lock file out of git.
func (s *Store) ensureIgnore() (bool, error) {
	ignorePath := filepath.Join(s.Path, ".gitignore")
	wanted := []string{s.config.SystemDir + "/", s.config.SystemDir + ".lock", TempFilePrefix + "*"}

	content, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(content), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, w := range wanted {
		if !present[w] {
			missing = append(missing, w)
		}
	}
	if len(missing) == 0 {
		return false, nil
	}

	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		if _, err := f.WriteString("\n"); err != nil {
			return false, err
		}
	}
	if _, err := f.WriteString(strings.Join(missing, "\n") + "\n"); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads the book into a new Directory built with opts.
// A missing book file yields an empty Directory.
func (s *Store) Load(ctx context.Context, opts ...core.Option) (*core.Directory, error) {
	d := core.NewDirectory(opts...)

	f, err := os.Open(s.File())
	if os.IsNotExist(err) {
		if s.config.Logger != nil {
			s.config.Logger.Debug("book file missing, starting empty", "file", s.File())
		}
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open book: %w", err)
	}
	defer f.Close()

	n, err := s.decodeInto(d, f, s.config.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load book %s: %w", s.config.File, err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("book loaded", "file", s.File(), "records", n)
	}
	return d, nil
}

// Save writes d to the book file atomically and commits it unless gitless.
// The commit message is taken from core.ChangeReasonKey when present.
func (s *Store) Save(ctx context.Context, d *core.Directory) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	serializer, err := s.serializerFor(s.config.File)
	if err != nil {
		return err
	}
	data, err := serializer.Encode(NewSnapshot(d))
	if err != nil {
		return fmt.Errorf("failed to serialize book: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.File()), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	if err := writeFileAtomic(s.File(), data, 0644); err != nil {
		return fmt.Errorf("failed to write book: %w", err)
	}

	s.mu.Lock()
	now := time.Now()
	s.lastSave = &now
	s.mu.Unlock()

	if s.config.Logger != nil {
		s.config.Logger.Debug("book saved", "file", s.File(), "records", d.Len())
	}

	if s.config.Gitless {
		return nil
	}
	return s.commit(ctx)
}

func (s *Store) commit(ctx context.Context) error {
	unlock, err := s.git.Lock(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	if err := s.git.Add(ctx, s.config.File); err != nil {
		return fmt.Errorf("failed to git add: %w", err)
	}

	staged, err := s.git.HasStagedChanges(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect git index: %w", err)
	}
	if !staged {
		return nil
	}

	msg := "docs(book): update " + s.config.File
	if val, ok := ctx.Value(core.ChangeReasonKey).(string); ok && val != "" {
		msg = val
	}
	if err := s.git.Commit(ctx, msg); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}
	return nil
}

// Import adds the records of every file matching pattern (doublestar syntax,
// relative to the book directory) to d. Files are processed in lexical
// order, so later files win on name clashes. Every file is decoded before d
// is touched: a single invalid file or record leaves d unchanged. It returns
// the number of records imported.
func (s *Store) Import(ctx context.Context, d *core.Directory, pattern string) (int, error) {
	matches, err := doublestar.Glob(os.DirFS(s.Path), filepath.ToSlash(pattern))
	if err != nil {
		return 0, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	now := d.Now()
	var pending []*core.Record
	for _, rel := range matches {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		records, err := s.importFile(rel, now)
		if err != nil {
			return 0, fmt.Errorf("failed to import %s: %w", rel, err)
		}
		pending = append(pending, records...)

		if s.config.Logger != nil {
			s.config.Logger.Debug("decoded import", "file", rel, "records", len(records))
		}
	}
	return addAll(d, pending)
}

func (s *Store) importFile(rel string, now time.Time) ([]*core.Record, error) {
	f, err := os.Open(filepath.Join(s.Path, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snap, err := s.decodeSnapshot(f, rel)
	if err != nil {
		return nil, err
	}
	return snap.decodeRecords(now)
}

// Export writes d to w in the given format ("yaml", "json", "csv" or any
// registered extension).
func (s *Store) Export(ctx context.Context, d *core.Directory, w io.Writer, format string) error {
	serializer, err := s.serializerFor(normalizeExt(format))
	if err != nil {
		return err
	}
	data, err := serializer.Encode(NewSnapshot(d))
	if err != nil {
		return fmt.Errorf("failed to serialize book: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// History returns the last n commit subjects of the book.
func (s *Store) History(ctx context.Context, n int) ([]string, error) {
	if s.config.Gitless {
		return nil, errors.New("history is not available in gitless mode")
	}
	return s.git.Log(ctx, n)
}

func (s *Store) decodeInto(d *core.Directory, r io.Reader, name string) (int, error) {
	snap, err := s.decodeSnapshot(r, name)
	if err != nil {
		return 0, err
	}
	return snap.Apply(d)
}

func (s *Store) decodeSnapshot(r io.Reader, name string) (Snapshot, error) {
	serializer, err := s.serializerFor(name)
	if err != nil {
		return Snapshot{}, err
	}
	snap, err := serializer.Decode(r)
	if err != nil {
		return Snapshot{}, err
	}
	if snap.Version > SnapshotVersion {
		return Snapshot{}, fmt.Errorf("unsupported book version %d", snap.Version)
	}
	return snap, nil
}

func (s *Store) serializerFor(name string) (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = name
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	serializer, ok := s.serializers[ext]
	if !ok {
		return nil, fmt.Errorf("no serializer registered for %q", ext)
	}
	return serializer, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
