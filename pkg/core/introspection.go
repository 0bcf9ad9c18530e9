package core

import (
	"github.com/aretw0/introspection"
)

// DirectoryState exposes internal state for observability.
type DirectoryState struct {
	Records int    `json:"records"`
	Notes   int    `json:"notes"`
	Owner   string `json:"owner,omitempty"`
	Sorted  bool   `json:"sorted"`
}

// State implements introspection.Introspectable.
func (d *Directory) State() any {
	notes := 0
	for _, r := range d.entries {
		notes += len(r.Notes)
	}

	owner := ""
	if r := d.Owner(); r != nil {
		owner = r.Name()
	}

	return DirectoryState{
		Records: len(d.entries),
		Notes:   notes,
		Owner:   owner,
		Sorted:  d.sorted,
	}
}

// ComponentType implements introspection.Component.
func (d *Directory) ComponentType() string {
	return "directory"
}

var _ introspection.Introspectable = (*Directory)(nil)
var _ introspection.Component = (*Directory)(nil)
