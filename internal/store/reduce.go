package store

// reduce applies one action to a slice state and returns the next state.
// It reads nothing but its arguments and never mutates shared slices in
// place; every change path rebuilds the affected collection.
func reduce[T Entity](s SliceState[T], a action[T]) SliceState[T] {
	switch act := a.(type) {
	case pendingAction[T]:
		s.IsLoading = true
		s.Err = ""

	case fulfilledListAction[T]:
		// fetch-all / fetch-filtered replace the collection wholesale
		s.Items = append([]T(nil), act.items...)
		s.IsLoading = false

	case fulfilledItemAction[T]:
		s.IsLoading = false
		switch act.op {
		case OpFetchByID:
			item := act.item
			s.Selected = &item
		case OpCreate:
			s.Items = append(append([]T(nil), s.Items...), act.item)
			s.Snackbar = Snackbar{Open: true, Message: act.message, Severity: SeveritySuccess}
		case OpUpdate:
			items := append([]T(nil), s.Items...)
			for i := range items {
				if items[i].EntityID() == act.item.EntityID() {
					items[i] = act.item
				}
			}
			s.Items = items
			if s.Selected != nil && (*s.Selected).EntityID() == act.item.EntityID() {
				item := act.item
				s.Selected = &item
			}
			s.Snackbar = Snackbar{Open: true, Message: act.message, Severity: SeveritySuccess}
		}

	case fulfilledDeleteAction[T]:
		s.IsLoading = false
		items := make([]T, 0, len(s.Items))
		for _, it := range s.Items {
			if it.EntityID() != act.id {
				items = append(items, it)
			}
		}
		s.Items = items
		s.Snackbar = Snackbar{Open: true, Message: act.message, Severity: SeveritySuccess}

	case rejectedAction[T]:
		// The collection and the selected buffer stay untouched on any
		// rejection, including the no-results case.
		s.IsLoading = false
		s.Err = act.reason
		s.Snackbar = Snackbar{Open: true, Message: act.reason, Severity: act.severity}

	case clearNoticeAction[T]:
		s.Snackbar = Snackbar{}
		s.Err = ""

	case setSearchOpenAction[T]:
		s.SearchOpen = act.open

	case setSearchAction[T]:
		fields := make(map[string]string, len(act.fields))
		for k, v := range act.fields {
			fields[k] = v
		}
		s.Search = fields
	}
	return s
}
