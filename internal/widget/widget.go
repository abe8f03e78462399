// Package widget holds the to-do list core: an entry form's input and the
// container of checkable entries it appends to.
package widget

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/checklist/internal/model"
)

var (
	ErrNoInput     = errors.New("widget: input control is nil")
	ErrNoContainer = errors.New("widget: entry container is nil")
)

type ListWidget struct {
	input    Input
	list     *EntryList
	log      zerolog.Logger
	newID    func() uuid.UUID
	handlers []Handler
}

type Option func(*ListWidget)

func WithLogger(l zerolog.Logger) Option {
	return func(w *ListWidget) { w.log = l }
}

// WithIDGenerator replaces uuid.New, mostly for tests.
func WithIDGenerator(f func() uuid.UUID) Option {
	return func(w *ListWidget) {
		if f != nil {
			w.newID = f
		}
	}
}

// New wires a widget to its input and container. Both are required.
func New(input Input, list *EntryList, opts ...Option) (*ListWidget, error) {
	if input == nil {
		return nil, ErrNoInput
	}
	if list == nil {
		return nil, ErrNoContainer
	}
	w := &ListWidget{
		input: input,
		list:  list,
		log:   zerolog.Nop(),
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Subscribe registers h for every subsequent event.
func (w *ListWidget) Subscribe(h Handler) {
	if h != nil {
		w.handlers = append(w.handlers, h)
	}
}

// Submit appends the input's current value as a new unchecked entry and
// clears the input. Blank values are accepted as-is.
func (w *ListWidget) Submit() model.Entry {
	text := w.input.Value()
	if strings.TrimSpace(text) == "" {
		w.log.Warn().Int("len", len(text)).Msg("accepting blank entry")
	}
	e := model.Entry{ID: w.newID(), Text: text}
	i := w.list.push(e)
	w.input.SetValue("")

	w.log.Debug().Str("id", e.ID.String()).Int("index", i).Msg("entry added")
	w.emit(Event{Kind: EntryAdded, Entry: e, Index: i})
	return e
}

// SetDone applies the checkbox state to the entry with the given id. It
// reports false only for ids this widget never produced. Setting the state
// an entry already has is a no-op and emits nothing.
func (w *ListWidget) SetDone(id uuid.UUID, checked bool) (model.Entry, bool) {
	e, i, ok := w.list.Find(id)
	if !ok {
		w.log.Debug().Str("id", id.String()).Msg("toggle for unknown entry")
		return model.Entry{}, false
	}
	if e.Done == checked {
		return e, true
	}
	e = w.list.setDone(i, checked)

	w.log.Debug().Str("id", id.String()).Bool("done", checked).Msg("entry toggled")
	w.emit(Event{Kind: EntryToggled, Entry: e, Index: i})
	return e, true
}

// Toggle flips the checkbox of the entry at position i.
func (w *ListWidget) Toggle(i int) (model.Entry, bool) {
	e, ok := w.list.At(i)
	if !ok {
		return model.Entry{}, false
	}
	return w.SetDone(e.ID, !e.Done)
}

func (w *ListWidget) Entries() []model.Entry { return w.list.Entries() }

func (w *ListWidget) List() *EntryList { return w.list }

func (w *ListWidget) emit(ev Event) {
	for _, h := range w.handlers {
		h(ev)
	}
}
