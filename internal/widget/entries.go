package widget

import (
	"github.com/google/uuid"

	"github.com/idilsaglam/checklist/internal/model"
)

// EntryList is the append-only container the widget renders into.
// Only the owning ListWidget mutates it; readers get copies.
type EntryList struct {
	entries []model.Entry
	index   map[uuid.UUID]int
}

func NewEntryList() *EntryList {
	return &EntryList{index: make(map[uuid.UUID]int)}
}

func (l *EntryList) Len() int { return len(l.entries) }

// At returns the entry at position i (0-based, submission order).
func (l *EntryList) At(i int) (model.Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return model.Entry{}, false
	}
	return l.entries[i], true
}

// Find looks an entry up by id and reports its position.
func (l *EntryList) Find(id uuid.UUID) (model.Entry, int, bool) {
	i, ok := l.index[id]
	if !ok {
		return model.Entry{}, -1, false
	}
	return l.entries[i], i, true
}

// Entries returns a snapshot in submission order.
func (l *EntryList) Entries() []model.Entry {
	out := make([]model.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Stats counts done and pending entries.
func (l *EntryList) Stats() (done, pending int) {
	for _, e := range l.entries {
		if e.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (l *EntryList) push(e model.Entry) int {
	l.entries = append(l.entries, e)
	l.index[e.ID] = len(l.entries) - 1
	return len(l.entries) - 1
}

func (l *EntryList) setDone(i int, done bool) model.Entry {
	l.entries[i].Done = done
	return l.entries[i]
}
