package model

import "github.com/google/uuid"

// Entry is one to-do line: a checkbox plus its label.
// Strikethrough is derived from Done when rendering, never stored.
type Entry struct {
	ID   uuid.UUID
	Text string
	Done bool
}

// CheckboxID is the per-entry control identifier.
func (e Entry) CheckboxID() string { return "entry-" + e.ID.String() }
