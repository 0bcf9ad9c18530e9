package fs

import (
	"sort"
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	File          string     `json:"file"`
	SystemDir     string     `json:"system_dir"`
	Gitless       bool       `json:"gitless"`
	ReadOnly      bool       `json:"read_only"`
	Strict        bool       `json:"strict"`
	Serializers   []string   `json:"serializers"`
	WatcherActive bool       `json:"watcher_active"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	serializers := make([]string, 0, len(s.serializers))
	for ext := range s.serializers {
		serializers = append(serializers, ext)
	}
	sort.Strings(serializers)

	return StoreState{
		Path:          s.Path,
		File:          s.config.File,
		SystemDir:     s.config.SystemDir,
		Gitless:       s.config.Gitless,
		ReadOnly:      s.config.ReadOnly,
		Strict:        s.config.Strict,
		Serializers:   serializers,
		WatcherActive: s.watcherActive,
		LastSave:      s.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
