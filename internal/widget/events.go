package widget

import "github.com/idilsaglam/checklist/internal/model"

type EventKind int

const (
	EntryAdded EventKind = iota + 1
	EntryToggled
)

func (k EventKind) String() string {
	switch k {
	case EntryAdded:
		return "added"
	case EntryToggled:
		return "toggled"
	}
	return "unknown"
}

// Event describes a change to the list. Index is the entry's 0-based position.
type Event struct {
	Kind  EventKind
	Entry model.Entry
	Index int
}

// Handler observes widget changes. Handlers run synchronously inside the
// operation that produced the event.
type Handler func(Event)
