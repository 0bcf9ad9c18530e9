package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is a titled, tagged piece of text owned by exactly one Record.
type Note struct {
	ID        string
	Title     string
	Body      string
	Tags      []string
	CreatedAt time.Time
}

// NewNote creates a note with a fresh ID. Duplicate tags are ignored.
func NewNote(title, body string, tags ...string) (*Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidNote)
	}

	n := &Note{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	for _, t := range tags {
		n.AddTag(t)
	}
	return n, nil
}

// Edit replaces the note body.
func (n *Note) Edit(body string) {
	n.Body = body
}

// AddTag adds tag to the set. Blank and already present tags are ignored.
// It reports whether the set changed.
func (n *Note) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || n.HasTag(tag) {
		return false
	}
	n.Tags = append(n.Tags, tag)
	return true
}

// RemoveTag removes tag from the set and reports whether it was present.
func (n *Note) RemoveTag(tag string) bool {
	for i, t := range n.Tags {
		if t == tag {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// HasTag reports whether the tag set contains tag exactly.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// String renders the note as "title: body [tag, ...]".
func (n *Note) String() string {
	var b strings.Builder
	b.WriteString(n.Title)
	if n.Body != "" {
		b.WriteString(": ")
		b.WriteString(n.Body)
	}
	if len(n.Tags) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(n.Tags, ", "))
		b.WriteString("]")
	}
	return b.String()
}
