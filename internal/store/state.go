// Package store is the application's sole mutable state container: one
// resource slice per collection plus an auth slice, composed into a root
// store. Reducers are pure functions of (state, action); the store applies
// actions atomically, one at a time, in dispatch order. Cross-slice reads
// happen only through the Snapshot accessor, never inside reducers.
package store

// Severity grades a snackbar notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Snackbar is the single-slot transient notification per slice. A new
// notification overwrites an unacknowledged one; there is no queue.
type Snackbar struct {
	Open     bool
	Message  string
	Severity Severity
}

// Entity is anything a resource slice can hold.
type Entity interface {
	EntityID() string
}

// SliceState is the full state of one resource slice.
type SliceState[T Entity] struct {
	Items      []T
	Selected   *T
	IsLoading  bool
	Err        string
	Snackbar   Snackbar
	SearchOpen bool
	Search     map[string]string
}

func copyState[T Entity](s SliceState[T]) SliceState[T] {
	out := s
	out.Items = append([]T(nil), s.Items...)
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	if s.Search != nil {
		out.Search = make(map[string]string, len(s.Search))
		for k, v := range s.Search {
			out.Search[k] = v
		}
	}
	return out
}
