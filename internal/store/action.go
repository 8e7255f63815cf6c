package store

// Op names the request-thunk operation families.
type Op int

const (
	OpFetchAll Op = iota
	OpFetchByID
	OpFetchFiltered
	OpCreate
	OpUpdate
	OpDelete
)

// Lifecycle and UI actions reduced by a resource slice. Thunks construct
// settlement actions; views construct the UI-state ones.
type action[T Entity] interface {
	isAction()
}

type pendingAction[T Entity] struct {
	op Op
}

type fulfilledListAction[T Entity] struct {
	op    Op
	items []T
}

type fulfilledItemAction[T Entity] struct {
	op      Op
	item    T
	message string
}

type fulfilledDeleteAction[T Entity] struct {
	id      string
	message string
}

type rejectedAction[T Entity] struct {
	op       Op
	reason   string
	severity Severity
}

type clearNoticeAction[T Entity] struct{}

type setSearchOpenAction[T Entity] struct {
	open bool
}

type setSearchAction[T Entity] struct {
	fields map[string]string
}

func (pendingAction[T]) isAction()         {}
func (fulfilledListAction[T]) isAction()   {}
func (fulfilledItemAction[T]) isAction()   {}
func (fulfilledDeleteAction[T]) isAction() {}
func (rejectedAction[T]) isAction()        {}
func (clearNoticeAction[T]) isAction()     {}
func (setSearchOpenAction[T]) isAction()   {}
func (setSearchAction[T]) isAction()       {}
