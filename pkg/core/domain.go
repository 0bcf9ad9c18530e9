// Package core holds the contact directory domain: records, notes and the
// Directory that searches and maintains them.
package core

// EventType represents the type of change in the book.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the persisted book.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}

type contextKey string

// ChangeReasonKey is the context key for passing the commit message/change reason.
const ChangeReasonKey contextKey = "change_reason"
