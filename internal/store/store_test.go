package store

import (
	"errors"
	"testing"

	"crm-backoffice/internal/domain"
)

func TestStore_SnapshotCopiesCollections(t *testing.T) {
	st := New()
	st.Customers.FulfillList(OpFetchAll, []domain.Customer{{ID: "1", FirstName: "Ann"}})
	st.Categories.FulfillList(OpFetchAll, []domain.Category{{ID: "c1", Name: "Coffee"}})

	snap := st.Snapshot()
	if len(snap.Customers) != 1 || snap.Customers[0].FirstName != "Ann" {
		t.Fatalf("unexpected snapshot %+v", snap.Customers)
	}

	snap.Customers[0].FirstName = "Mutated"
	if st.Customers.State().Items[0].FirstName != "Ann" {
		t.Fatalf("snapshot aliases live state")
	}
}

func TestStore_SubscribersRunPerAction(t *testing.T) {
	st := New()
	var calls int
	st.Subscribe(func() { calls++ })

	st.Orders.Pending(OpFetchAll)
	st.Orders.FulfillList(OpFetchAll, nil)
	st.Orders.ClearNotice()

	if calls != 3 {
		t.Fatalf("expected 3 notifications, got %d", calls)
	}
}

func TestAuthSlice_SignInSignOutLifecycle(t *testing.T) {
	st := New()

	st.Auth.Pending()
	if !st.Auth.State().IsLoading {
		t.Fatalf("expected loading during sign-in")
	}

	st.Auth.FulfillSignIn(domain.Session{
		AccessToken: "tok",
		User:        domain.User{ID: "u-1", Email: "admin@example.com"},
	})
	state := st.Auth.State()
	if state.IsLoading || state.Token != "tok" || state.User == nil || state.User.ID != "u-1" {
		t.Fatalf("unexpected state %+v", state)
	}
	if !state.Snackbar.Open || state.Snackbar.Severity != SeveritySuccess {
		t.Fatalf("expected success notification, got %+v", state.Snackbar)
	}

	st.Auth.FulfillSignOut()
	state = st.Auth.State()
	if state.User != nil || state.Token != "" {
		t.Fatalf("expected cleared session, got %+v", state)
	}
}

func TestAuthSlice_RestoreIsSilent(t *testing.T) {
	st := New()
	st.Auth.Restore(domain.Session{AccessToken: "tok", User: domain.User{ID: "u-1"}})
	state := st.Auth.State()
	if state.Token != "tok" || state.User == nil {
		t.Fatalf("unexpected state %+v", state)
	}
	if state.Snackbar.Open {
		t.Fatalf("restore must not open a notification")
	}
}

func TestAuthSlice_RejectedThenCleared(t *testing.T) {
	st := New()
	st.Auth.Reject(errors.New("invalid credentials"))
	state := st.Auth.State()
	if state.Err != "invalid credentials" || state.Snackbar.Severity != SeverityError {
		t.Fatalf("unexpected state %+v", state)
	}

	st.Auth.ClearNotice()
	st.Auth.ClearNotice()
	state = st.Auth.State()
	if state.Err != "" || state.Snackbar.Open {
		t.Fatalf("clear should be idempotent, got %+v", state)
	}
}
