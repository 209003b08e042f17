// Package search holds the search term of an event view and keeps the
// filtered event list in step with it.
package search

import (
	"slices"
	"time"

	"github.com/javiermolinar/agenda/internal/event"
)

// Search owns a search term plus the inputs of event.Filter, and re-derives
// the filtered list whenever any of them changes. Every setter recomputes
// synchronously and notifies subscribers before returning.
//
// A Search has a single owner and is not safe for concurrent use.
type Search struct {
	events   []event.Event
	term     string
	ref      time.Time
	view     event.ViewMode
	filtered []event.Event

	nextID      int
	subscribers map[int]func([]event.Event)
}

// New creates a Search with an empty term.
func New(events []event.Event, ref time.Time, view event.ViewMode) *Search {
	s := &Search{
		events:      events,
		ref:         ref,
		view:        view,
		subscribers: make(map[int]func([]event.Event)),
	}
	s.filtered = event.Filter(s.events, s.term, s.ref, s.view)
	return s
}

// Term returns the current search term.
func (s *Search) Term() string { return s.term }

// Events returns a copy of the unfiltered event list.
func (s *Search) Events() []event.Event { return slices.Clone(s.events) }

// Reference returns the date the view window is built around.
func (s *Search) Reference() time.Time { return s.ref }

// View returns the current view mode.
func (s *Search) View() event.ViewMode { return s.view }

// Filtered returns a copy of the current filtered list.
func (s *Search) Filtered() []event.Event {
	out := make([]event.Event, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// SetTerm replaces the search term.
func (s *Search) SetTerm(term string) {
	if term == s.term {
		return
	}
	s.term = term
	s.recompute()
}

// SetEvents replaces the event list.
func (s *Search) SetEvents(events []event.Event) {
	s.events = events
	s.recompute()
}

// SetReference moves the view window to the one containing ref.
func (s *Search) SetReference(ref time.Time) {
	if ref.Equal(s.ref) {
		return
	}
	s.ref = ref
	s.recompute()
}

// SetView switches between week and month windows.
func (s *Search) SetView(view event.ViewMode) {
	if view == s.view {
		return
	}
	s.view = view
	s.recompute()
}

// Subscribe registers fn to be called with the new filtered list after every
// recomputation. The returned function removes the subscription.
func (s *Search) Subscribe(fn func([]event.Event)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

func (s *Search) recompute() {
	s.filtered = event.Filter(s.events, s.term, s.ref, s.view)
	for _, fn := range s.subscribers {
		fn(s.Filtered())
	}
}
