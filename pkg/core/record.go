package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record field names, as exposed by Fields.
const (
	FieldName     = "name"
	FieldPhones   = "phones"
	FieldBirthday = "birthday"
	FieldEmail    = "email"
	FieldAddress  = "address"
	FieldOwner    = "owner"
	FieldNotes    = "notes"
)

// Record is a single contact, identified by its name.
type Record struct {
	name     string
	Phones   []Phone
	Birthday *Birthday
	Email    string
	Address  string
	Notes    []*Note
	Owner    bool
}

// NewRecord creates a record with the given name. The name is only trimmed;
// Directory.Add rejects blank names.
func NewRecord(name string) *Record {
	return &Record{name: strings.TrimSpace(name)}
}

// Name returns the record's identity.
func (r *Record) Name() string { return r.name }

// Rename changes the record's name and returns a confirmation message.
// Use Directory.RenameRecord for records stored in a Directory, it keeps the
// key in sync.
func (r *Record) Rename(newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", fmt.Errorf("%w: name cannot be empty", ErrInvalidRecord)
	}
	old := r.name
	r.name = newName
	return fmt.Sprintf("Name changed from %s to %s.", old, newName), nil
}

// AddPhone validates raw and appends it. Numbers already present are ignored.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if r.FindPhone(p.Value()) == nil {
		r.Phones = append(r.Phones, p)
	}
	return nil
}

// EditPhone replaces oldRaw with newRaw in place.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.phoneIndex(oldRaw)
	if i < 0 {
		return fmt.Errorf("%w: phone %s on %s", ErrNotFound, oldRaw, r.name)
	}
	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.Phones[i] = p
	return nil
}

// RemovePhone removes raw from the record.
func (r *Record) RemovePhone(raw string) error {
	i := r.phoneIndex(raw)
	if i < 0 {
		return fmt.Errorf("%w: phone %s on %s", ErrNotFound, raw, r.name)
	}
	r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
	return nil
}

// FindPhone returns the stored phone matching raw, or nil.
func (r *Record) FindPhone(raw string) *Phone {
	if i := r.phoneIndex(raw); i >= 0 {
		return &r.Phones[i]
	}
	return nil
}

func (r *Record) phoneIndex(raw string) int {
	want := raw
	if p, err := NewPhone(raw); err == nil {
		want = p.Value()
	}
	for i, p := range r.Phones {
		if p.Value() == want {
			return i
		}
	}
	return -1
}

// SetBirthday parses raw and stores it.
func (r *Record) SetBirthday(raw string) error {
	return r.SetBirthdayAt(raw, time.Now())
}

// SetBirthdayAt parses raw, rejecting dates after now, and stores it.
func (r *Record) SetBirthdayAt(raw string, now time.Time) error {
	b, err := ParseBirthdayAt(raw, now)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// DaysToBirthday returns the days until the next birthday and false when no
// birthday is set.
func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	if r.Birthday == nil {
		return 0, false
	}
	return r.Birthday.DaysUntil(today), true
}

// AddNote appends n to the record's notes.
func (r *Record) AddNote(n *Note) error {
	if n == nil || strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidNote)
	}
	r.Notes = append(r.Notes, n)
	return nil
}

// NoteByTitle returns the first note with the given title, or nil.
func (r *Record) NoteByTitle(title string) *Note {
	for _, n := range r.Notes {
		if n.Title == title {
			return n
		}
	}
	return nil
}

// RemoveNote removes the first note with the given title and reports
// whether one was removed.
func (r *Record) RemoveNote(title string) bool {
	for i, n := range r.Notes {
		if n.Title == title {
			r.Notes = append(r.Notes[:i], r.Notes[i+1:]...)
			return true
		}
	}
	return false
}

// Field returns the string rendering of a single attribute.
func (r *Record) Field(name string) (string, bool) {
	v, ok := r.Fields()[name]
	return v, ok
}

// Fields returns every attribute of the record keyed by field name.
// Unset optional attributes render as empty strings.
func (r *Record) Fields() map[string]string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}
	notes := make([]string, len(r.Notes))
	for i, n := range r.Notes {
		notes[i] = n.String()
	}
	birthday := ""
	if r.Birthday != nil {
		birthday = r.Birthday.String()
	}

	return map[string]string{
		FieldName:     r.name,
		FieldPhones:   strings.Join(phones, "; "),
		FieldBirthday: birthday,
		FieldEmail:    r.Email,
		FieldAddress:  r.Address,
		FieldOwner:    strconv.FormatBool(r.Owner),
		FieldNotes:    strings.Join(notes, "; "),
	}
}

func (r *Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact name: %s", r.name)
	if len(r.Phones) > 0 {
		fmt.Fprintf(&b, ", phones: %s", r.Fields()[FieldPhones])
	}
	if r.Birthday != nil {
		fmt.Fprintf(&b, ", birthday: %s", r.Birthday)
	}
	if r.Email != "" {
		fmt.Fprintf(&b, ", email: %s", r.Email)
	}
	if r.Address != "" {
		fmt.Fprintf(&b, ", address: %s", r.Address)
	}
	return b.String()
}
