package core

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

// Directory is the in-memory contact book. It maps a contact name to its
// Record and keeps a deterministic iteration order (insertion order until
// Sort is called).
//
// Directory is not safe for concurrent use.
type Directory struct {
	entries  map[string]*Record
	order    []string
	matchers map[string]Matcher
	clock    clock.Clock
	logger   *slog.Logger
	sorted   bool
}

// NewDirectory creates an empty Directory.
func NewDirectory(opts ...Option) *Directory {
	d := &Directory{
		entries:  make(map[string]*Record),
		matchers: defaultMatchers(),
		clock:    clock.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RegisterMatcher adds or replaces the matcher used by FindByField for field.
func (d *Directory) RegisterMatcher(field string, m Matcher) {
	d.matchers[field] = m
}

// Add stores r under its name, replacing any record with the same name.
// A record flagged as owner clears the flag on the previous owner.
func (d *Directory) Add(r *Record) error {
	if r == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidRecord)
	}
	name := r.Name()
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidRecord)
	}

	if r.Owner {
		d.clearOwner(r)
	}

	if _, exists := d.entries[name]; !exists {
		d.order = append(d.order, name)
		d.sorted = false
	}
	d.entries[name] = r

	if d.logger != nil {
		d.logger.Debug("record added", "name", name)
	}
	return nil
}

// Owner returns the first record flagged as owner, or nil.
func (d *Directory) Owner() *Record {
	for _, name := range d.order {
		if r := d.entries[name]; r.Owner {
			return r
		}
	}
	return nil
}

// SetOwner flags the named record as owner and clears the flag everywhere else.
func (d *Directory) SetOwner(name string) error {
	r, ok := d.entries[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	d.clearOwner(r)
	r.Owner = true
	return nil
}

func (d *Directory) clearOwner(keep *Record) {
	for _, r := range d.entries {
		if r != keep && r.Owner {
			r.Owner = false
			if d.logger != nil {
				d.logger.Debug("owner flag cleared", "name", r.Name())
			}
		}
	}
}

// FindByPhone returns the first record holding phone in its stored form.
// Other records sharing the number are not reported, see FindAllByPhone.
func (d *Directory) FindByPhone(phone string) *Record {
	for _, name := range d.order {
		r := d.entries[name]
		for _, p := range r.Phones {
			if p.Value() == phone {
				return r
			}
		}
	}
	return nil
}

// FindAllByPhone returns every record holding phone in its stored form.
func (d *Directory) FindAllByPhone(phone string) []*Record {
	var result []*Record
	for _, name := range d.order {
		r := d.entries[name]
		for _, p := range r.Phones {
			if p.Value() == phone {
				result = append(result, r)
				break
			}
		}
	}
	return result
}

// FindByName returns the record stored under name, or nil.
func (d *Directory) FindByName(name string) *Record {
	return d.entries[name]
}

// Delete removes the record stored under name.
func (d *Directory) Delete(name string) error {
	if _, ok := d.entries[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(d.entries, name)
	d.removeKey(name)

	if d.logger != nil {
		d.logger.Debug("record deleted", "name", name)
	}
	return nil
}

// UpcomingBirthdays returns the records whose next birthday is between 0 and
// nDays days from today, both ends included, in directory order.
func (d *Directory) UpcomingBirthdays(nDays int) []*Record {
	if nDays < 0 {
		return nil
	}
	today := d.clock.Now()

	var result []*Record
	for _, name := range d.order {
		r := d.entries[name]
		delta, ok := r.DaysToBirthday(today)
		if ok && delta >= 0 && delta <= nDays {
			result = append(result, r)
		}
	}
	return result
}

// FindByField returns the distinct records matching value in the given
// search category: "phone"/"phones", "note", "tag", any record attribute
// (see Record.Fields) or "all". Unknown categories match nothing.
func (d *Directory) FindByField(field, value string) []*Record {
	match, ok := d.matchers[field]
	if !ok {
		match = fieldMatcher(field)
	}

	var result []*Record
	seen := make(map[*Record]bool)
	for _, name := range d.order {
		r := d.entries[name]
		if !seen[r] && match(r, value) {
			seen[r] = true
			result = append(result, r)
		}
	}
	return result
}

// Sort orders the directory by ascending name.
func (d *Directory) Sort() {
	if d.sorted {
		return
	}
	sort.Strings(d.order)
	d.sorted = true
}

// FindNoteByTitle returns the first note titled title, scanning records in
// directory order.
func (d *Directory) FindNoteByTitle(title string) *Note {
	for _, name := range d.order {
		if n := d.entries[name].NoteByTitle(title); n != nil {
			return n
		}
	}
	return nil
}

// DeleteNoteByTitle removes the first note titled title from its owner.
// It reports whether a note was removed.
func (d *Directory) DeleteNoteByTitle(title string) bool {
	for _, name := range d.order {
		if d.entries[name].RemoveNote(title) {
			if d.logger != nil {
				d.logger.Debug("note deleted", "title", title, "owner", name)
			}
			return true
		}
	}
	return false
}

// FindNotesByTag returns every note tagged exactly tag.
func (d *Directory) FindNotesByTag(tag string) []*Note {
	var result []*Note
	for _, name := range d.order {
		for _, n := range d.entries[name].Notes {
			if n.HasTag(tag) {
				result = append(result, n)
			}
		}
	}
	return result
}

// RenameRecord moves the record stored under oldName to newName and updates
// the record's own name. It returns the record's confirmation message.
// Unlike Add, it never replaces another record: a newName held by a
// different record fails with ErrNameTaken. On failure the directory is
// left unchanged.
func (d *Directory) RenameRecord(oldName, newName string) (string, error) {
	r, ok := d.entries[oldName]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, oldName)
	}
	target := strings.TrimSpace(newName)
	if other, taken := d.entries[target]; taken && other != r {
		return "", fmt.Errorf("%w: %s", ErrNameTaken, target)
	}

	msg, err := r.Rename(newName)
	if err != nil {
		return "", err
	}

	delete(d.entries, oldName)
	d.removeKey(oldName)
	d.entries[r.Name()] = r
	d.order = append(d.order, r.Name())
	d.sorted = false

	if d.logger != nil {
		d.logger.Debug("record renamed", "from", oldName, "to", r.Name())
	}
	return msg, nil
}

// Records returns the records in directory order.
func (d *Directory) Records() []*Record {
	result := make([]*Record, 0, len(d.order))
	for _, name := range d.order {
		result = append(result, d.entries[name])
	}
	return result
}

// Names returns the keys in directory order.
func (d *Directory) Names() []string {
	return append([]string(nil), d.order...)
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.entries)
}

// Now returns the current time of the directory clock.
func (d *Directory) Now() time.Time {
	return d.clock.Now()
}

func (d *Directory) removeKey(name string) {
	for i, k := range d.order {
		if k == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return
		}
	}
}
