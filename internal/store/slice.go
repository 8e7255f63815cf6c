package store

import (
	"errors"
	"fmt"

	"crm-backoffice/internal/domain"
)

// Slice owns one resource collection inside the root store. All mutation
// funnels through the store's apply loop, so two reducer applications for
// the same slice never interleave. Overlapping thunks still settle in
// completion order: the last settlement wins and overwrites the loading and
// snackbar state, matching the surrounding UI's expectations.
type Slice[T Entity] struct {
	plural   string
	singular string
	store    *Store
	state    SliceState[T]
}

func newSlice[T Entity](st *Store, plural, singular string) *Slice[T] {
	return &Slice[T]{plural: plural, singular: singular, store: st}
}

// Pending marks the start of any thunk for this slice.
func (s *Slice[T]) Pending(op Op) {
	s.apply(pendingAction[T]{op: op})
}

// FulfillList settles a fetch-all or fetch-filtered thunk.
func (s *Slice[T]) FulfillList(op Op, items []T) {
	s.apply(fulfilledListAction[T]{op: op, items: items})
}

// FulfillItem settles a fetch-by-id, create, or update thunk.
func (s *Slice[T]) FulfillItem(op Op, item T) {
	var msg string
	switch op {
	case OpCreate:
		msg = fmt.Sprintf("%s created", capitalize(s.singular))
	case OpUpdate:
		msg = fmt.Sprintf("%s updated", capitalize(s.singular))
	}
	s.apply(fulfilledItemAction[T]{op: op, item: item, message: msg})
}

// FulfillDelete settles a delete thunk, naming the removed id.
func (s *Slice[T]) FulfillDelete(id string) {
	s.apply(fulfilledDeleteAction[T]{
		id:      id,
		message: fmt.Sprintf("%s %s deleted", capitalize(s.singular), id),
	})
}

// Reject settles any failed thunk. A no-results or not-found failure is a
// warning; everything else is an error.
func (s *Slice[T]) Reject(op Op, err error) {
	severity := SeverityError
	var noMatch domain.NoMatchError
	if errors.As(err, &noMatch) || errors.Is(err, domain.ErrNotFound) {
		severity = SeverityWarning
	}
	s.apply(rejectedAction[T]{op: op, reason: err.Error(), severity: severity})
}

// ClearNotice closes the snackbar and clears the error. Safe to dispatch
// repeatedly and independent of in-flight requests.
func (s *Slice[T]) ClearNotice() {
	s.apply(clearNoticeAction[T]{})
}

// SetSearchOpen toggles the search panel flag. No network effect.
func (s *Slice[T]) SetSearchOpen(open bool) {
	s.apply(setSearchOpenAction[T]{open: open})
}

// SetSearch replaces the per-field search record. No network effect.
func (s *Slice[T]) SetSearch(fields map[string]string) {
	s.apply(setSearchAction[T]{fields: fields})
}

// State returns a defensive copy of the slice state.
func (s *Slice[T]) State() SliceState[T] {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return copyState(s.state)
}

func (s *Slice[T]) apply(a action[T]) {
	s.store.apply(func() {
		s.state = reduce(s.state, a)
	})
}

// items returns a copy of the collection; callers must hold the store lock.
func (s *Slice[T]) items() []T {
	return append([]T(nil), s.state.Items...)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
