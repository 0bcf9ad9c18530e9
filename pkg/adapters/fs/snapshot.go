package fs

import (
	"fmt"
	"time"

	"github.com/aretw0/keeper/pkg/core"
)

// SnapshotVersion is the current on-disk schema version.
const SnapshotVersion = 1

// Snapshot is the serializable form of a Directory.
type Snapshot struct {
	Version int         `json:"version" yaml:"version"`
	Records []RecordDTO `json:"records" yaml:"records"`
}

// RecordDTO is the serializable form of a core.Record.
type RecordDTO struct {
	Name     string    `json:"name" yaml:"name"`
	Phones   []string  `json:"phones,omitempty" yaml:"phones,omitempty"`
	Birthday string    `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Email    string    `json:"email,omitempty" yaml:"email,omitempty"`
	Address  string    `json:"address,omitempty" yaml:"address,omitempty"`
	Owner    bool      `json:"owner,omitempty" yaml:"owner,omitempty"`
	Notes    []NoteDTO `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NoteDTO is the serializable form of a core.Note.
type NoteDTO struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string    `json:"title" yaml:"title"`
	Body      string    `json:"body,omitempty" yaml:"body,omitempty"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// NewSnapshot captures d in directory order.
func NewSnapshot(d *core.Directory) Snapshot {
	s := Snapshot{Version: SnapshotVersion}
	for _, r := range d.Records() {
		s.Records = append(s.Records, recordToDTO(r))
	}
	return s
}

// Apply adds every record of the snapshot to d, overwriting records with the
// same name. It returns the number of records added. Birthdays are validated
// against d's clock. If any record is invalid d is left untouched.
func (s Snapshot) Apply(d *core.Directory) (int, error) {
	records, err := s.decodeRecords(d.Now())
	if err != nil {
		return 0, err
	}
	return addAll(d, records)
}

// decodeRecords converts every DTO, failing on the first invalid one.
func (s Snapshot) decodeRecords(now time.Time) ([]*core.Record, error) {
	records := make([]*core.Record, 0, len(s.Records))
	for i, dto := range s.Records {
		r, err := dto.toRecord(now)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, dto.Name, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func addAll(d *core.Directory, records []*core.Record) (int, error) {
	for i, r := range records {
		if err := d.Add(r); err != nil {
			return i, fmt.Errorf("record %d (%q): %w", i, r.Name(), err)
		}
	}
	return len(records), nil
}

func recordToDTO(r *core.Record) RecordDTO {
	dto := RecordDTO{
		Name:    r.Name(),
		Email:   r.Email,
		Address: r.Address,
		Owner:   r.Owner,
	}
	for _, p := range r.Phones {
		dto.Phones = append(dto.Phones, p.Value())
	}
	if r.Birthday != nil {
		dto.Birthday = r.Birthday.String()
	}
	for _, n := range r.Notes {
		dto.Notes = append(dto.Notes, NoteDTO{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Tags:      append([]string(nil), n.Tags...),
			CreatedAt: n.CreatedAt,
		})
	}
	return dto
}

func (dto RecordDTO) toRecord(now time.Time) (*core.Record, error) {
	r := core.NewRecord(dto.Name)
	if r.Name() == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", core.ErrInvalidRecord)
	}
	r.Email = dto.Email
	r.Address = dto.Address
	r.Owner = dto.Owner

	for _, p := range dto.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if dto.Birthday != "" {
		if err := r.SetBirthdayAt(dto.Birthday, now); err != nil {
			return nil, err
		}
	}
	for _, nd := range dto.Notes {
		n, err := core.NewNote(nd.Title, nd.Body, nd.Tags...)
		if err != nil {
			return nil, err
		}
		if nd.ID != "" {
			n.ID = nd.ID
		}
		if !nd.CreatedAt.IsZero() {
			n.CreatedAt = nd.CreatedAt
		}
		if err := r.AddNote(n); err != nil {
			return nil, err
		}
	}
	return r, nil
}
