package store

import (
	"errors"
	"testing"

	"crm-backoffice/internal/domain"
)

func TestReduce_PendingSetsLoadingAndClearsError(t *testing.T) {
	s := SliceState[domain.Customer]{Err: "old failure"}
	next := reduce(s, pendingAction[domain.Customer]{op: OpFetchAll})
	if !next.IsLoading || next.Err != "" {
		t.Fatalf("unexpected state %+v", next)
	}
}

func TestReduce_FetchAllReplacesItemsWholesale(t *testing.T) {
	s := SliceState[domain.Customer]{
		Items:     []domain.Customer{{ID: "9", FirstName: "Old"}},
		IsLoading: true,
	}
	next := reduce(s, fulfilledListAction[domain.Customer]{
		op:    OpFetchAll,
		items: []domain.Customer{{ID: "1", FirstName: "Ann"}, {ID: "2", FirstName: "Bo"}},
	})
	if next.IsLoading {
		t.Fatalf("loading still set")
	}
	if len(next.Items) != 2 || next.Items[0].ID != "1" {
		t.Fatalf("unexpected items %+v", next.Items)
	}
}

func TestReduce_FetchByIDFillsSelected(t *testing.T) {
	var s SliceState[domain.Customer]
	next := reduce(s, fulfilledItemAction[domain.Customer]{
		op:   OpFetchByID,
		item: domain.Customer{ID: "1", FirstName: "Ann"},
	})
	if next.Selected == nil || next.Selected.ID != "1" {
		t.Fatalf("unexpected selected %+v", next.Selected)
	}
}

func TestReduce_CreateAppendsAndOpensSuccessSnackbar(t *testing.T) {
	s := SliceState[domain.Customer]{Items: []domain.Customer{{ID: "1"}}}
	next := reduce(s, fulfilledItemAction[domain.Customer]{
		op:      OpCreate,
		item:    domain.Customer{ID: "2", FirstName: "Bo"},
		message: "Customer created",
	})
	if len(next.Items) != 2 || next.Items[1].ID != "2" {
		t.Fatalf("unexpected items %+v", next.Items)
	}
	if !next.Snackbar.Open || next.Snackbar.Severity != SeveritySuccess {
		t.Fatalf("unexpected snackbar %+v", next.Snackbar)
	}
	if len(s.Items) != 1 {
		t.Fatalf("previous state mutated: %+v", s.Items)
	}
}

func TestReduce_UpdateReplacesMatchingItemAndSelected(t *testing.T) {
	selected := domain.Customer{ID: "2", FirstName: "Bo"}
	s := SliceState[domain.Customer]{
		Items:    []domain.Customer{{ID: "1", FirstName: "Ann"}, {ID: "2", FirstName: "Bo"}},
		Selected: &selected,
	}
	next := reduce(s, fulfilledItemAction[domain.Customer]{
		op:      OpUpdate,
		item:    domain.Customer{ID: "2", FirstName: "Beatrice"},
		message: "Customer updated",
	})
	if next.Items[1].FirstName != "Beatrice" || next.Items[0].FirstName != "Ann" {
		t.Fatalf("unexpected items %+v", next.Items)
	}
	if next.Selected == nil || next.Selected.FirstName != "Beatrice" {
		t.Fatalf("selected buffer not refreshed: %+v", next.Selected)
	}
}

func TestReduce_DeleteRemovesExactlyMatchingItem(t *testing.T) {
	s := SliceState[domain.Customer]{
		Items: []domain.Customer{{ID: "1"}, {ID: "2"}, {ID: "3"}},
	}
	next := reduce(s, fulfilledDeleteAction[domain.Customer]{id: "2", message: "Customer 2 deleted"})
	if len(next.Items) != 2 || next.Items[0].ID != "1" || next.Items[1].ID != "3" {
		t.Fatalf("unexpected items %+v", next.Items)
	}
	if next.Snackbar.Message != "Customer 2 deleted" {
		t.Fatalf("delete snackbar should name the id, got %q", next.Snackbar.Message)
	}
}

func TestReduce_RejectedKeepsItemsAndSelected(t *testing.T) {
	selected := domain.Customer{ID: "1"}
	s := SliceState[domain.Customer]{
		Items:     []domain.Customer{{ID: "1"}},
		Selected:  &selected,
		IsLoading: true,
	}
	next := reduce(s, rejectedAction[domain.Customer]{
		op:       OpFetchFiltered,
		reason:   "No customers found",
		severity: SeverityWarning,
	})
	if next.IsLoading {
		t.Fatalf("loading still set")
	}
	if len(next.Items) != 1 || next.Selected == nil {
		t.Fatalf("rejection must not touch items or selected: %+v", next)
	}
	if next.Snackbar.Severity != SeverityWarning || next.Err != "No customers found" {
		t.Fatalf("unexpected notification %+v err=%q", next.Snackbar, next.Err)
	}
}

func TestReduce_ClearNoticeIsIdempotent(t *testing.T) {
	s := SliceState[domain.Customer]{
		Err:      "boom",
		Snackbar: Snackbar{Open: true, Message: "boom", Severity: SeverityError},
	}
	once := reduce(s, clearNoticeAction[domain.Customer]{})
	twice := reduce(once, clearNoticeAction[domain.Customer]{})
	for _, st := range []SliceState[domain.Customer]{once, twice} {
		if st.Snackbar.Open || st.Snackbar.Message != "" || st.Err != "" {
			t.Fatalf("unexpected state after clear %+v", st)
		}
	}
}

func TestReduce_SearchSetters(t *testing.T) {
	var s SliceState[domain.Product]
	s = reduce(s, setSearchOpenAction[domain.Product]{open: true})
	if !s.SearchOpen {
		t.Fatalf("search panel should be open")
	}
	fields := map[string]string{"name": "beans"}
	s = reduce(s, setSearchAction[domain.Product]{fields: fields})
	fields["name"] = "mutated"
	if s.Search["name"] != "beans" {
		t.Fatalf("search record must be copied, got %+v", s.Search)
	}
}

func TestSlice_RejectSeverityMapping(t *testing.T) {
	st := New()

	st.Products.Reject(OpFetchFiltered, domain.NoMatchError{Resource: "products"})
	state := st.Products.State()
	if state.Snackbar.Severity != SeverityWarning || state.Snackbar.Message != "No products found" {
		t.Fatalf("unexpected no-match notification %+v", state.Snackbar)
	}

	st.Products.Reject(OpFetchByID, domain.ErrNotFound)
	if st.Products.State().Snackbar.Severity != SeverityWarning {
		t.Fatalf("not-found should be a warning")
	}

	st.Products.Reject(OpFetchAll, errors.New("gateway unreachable"))
	state = st.Products.State()
	if state.Snackbar.Severity != SeverityError || state.Err != "gateway unreachable" {
		t.Fatalf("unexpected failure notification %+v err=%q", state.Snackbar, state.Err)
	}
}

// Two overlapping thunks settle in completion order: the later settlement
// overwrites the loading flag and notification. This is the documented
// last-settled-wins behavior; there is no generation guard.
func TestSlice_LastSettledWins(t *testing.T) {
	st := New()

	st.Customers.Pending(OpFetchAll)
	st.Customers.Pending(OpFetchFiltered)

	// the filtered request settles first
	st.Customers.FulfillList(OpFetchFiltered, []domain.Customer{{ID: "1", FirstName: "Ann"}})
	// the slow fetch-all settles last and clobbers the filtered result
	st.Customers.FulfillList(OpFetchAll, []domain.Customer{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	state := st.Customers.State()
	if state.IsLoading {
		t.Fatalf("loading should be false after last settlement")
	}
	if len(state.Items) != 3 {
		t.Fatalf("expected last settlement to win, got %+v", state.Items)
	}
}
