package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/keeper/pkg/core"
)

const watchDebounce = 50 * time.Millisecond

// Watch reports changes to files in the book directory whose name matches
// pattern (doublestar syntax). An empty pattern watches the book file only.
// The channel is closed when ctx is done.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = s.config.File
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	events := make(chan core.Event, 16)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		deb := newDebouncer(watchDebounce)
		defer close(events)
		defer deb.stopAndWait()
		defer s.setWatcherActive(false)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, keep := s.mapEvent(event, pattern)
				if !keep {
					continue
				}
				deb.add(e, func(e core.Event) {
					select {
					case events <- e:
					case <-ctx.Done():
					}
				})

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.handleWatchError(wErr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.handleWatchError(fmt.Errorf("watcher panic: %w", err))
	}))

	return events, nil
}

// mapEvent converts an fsnotify event into a core.Event, filtering temp
// files and names not matching pattern.
func (s *Store) mapEvent(event fsnotify.Event, pattern string) (core.Event, bool) {
	rel, err := filepath.Rel(s.Path, event.Name)
	if err != nil {
		return core.Event{}, false
	}
	rel = filepath.ToSlash(rel)

	if matched, _ := doublestar.Match(TempFilePrefix+"*", filepath.Base(rel)); matched {
		return core.Event{}, false
	}
	if matched, _ := doublestar.Match(pattern, rel); !matched {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case event.Has(fsnotify.Create):
		t = core.EventCreate
	case event.Has(fsnotify.Write):
		t = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("book event", "type", t, "file", rel)
	}
	return core.Event{Type: t, ID: rel, Timestamp: time.Now().Unix()}, true
}

func (s *Store) handleWatchError(err error) {
	if s.config.Logger != nil {
		s.config.Logger.Error("watcher error", "error", err)
	}
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
	}
}

// debouncer coalesces bursts of events per ID, delivering the last one.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if t, ok := d.timers[e.ID]; ok && t.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.timers[e.ID] == timer {
			delete(d.timers, e.ID)
		}
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			fire(e)
		}
	})
	d.timers[e.ID] = timer
}

// stopAndWait cancels pending deliveries and waits for in-flight ones.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	for id, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, id)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
