package store

import "crm-backoffice/internal/domain"

// AuthState holds the signed-in user and token instead of a collection but
// follows the same pending/fulfilled/rejected shape as the resource slices.
type AuthState struct {
	User      *domain.User
	Token     string
	IsLoading bool
	Err       string
	Snackbar  Snackbar
}

type authAction interface {
	isAuthAction()
}

type authPending struct{}

type authSignedIn struct {
	session domain.Session
	// restored sessions come from the persisted client state and settle
	// without a notification
	restored bool
}

type authSignedOut struct{}

type authRejected struct {
	reason string
}

type authClearNotice struct{}

func (authPending) isAuthAction()     {}
func (authSignedIn) isAuthAction()    {}
func (authSignedOut) isAuthAction()   {}
func (authRejected) isAuthAction()    {}
func (authClearNotice) isAuthAction() {}

func reduceAuth(s AuthState, a authAction) AuthState {
	switch act := a.(type) {
	case authPending:
		s.IsLoading = true
		s.Err = ""
	case authSignedIn:
		user := act.session.User
		s.User = &user
		s.Token = act.session.AccessToken
		s.IsLoading = false
		if !act.restored {
			s.Snackbar = Snackbar{Open: true, Message: "Signed in", Severity: SeveritySuccess}
		}
	case authSignedOut:
		s.User = nil
		s.Token = ""
		s.IsLoading = false
		s.Snackbar = Snackbar{Open: true, Message: "Signed out", Severity: SeverityInfo}
	case authRejected:
		s.IsLoading = false
		s.Err = act.reason
		s.Snackbar = Snackbar{Open: true, Message: act.reason, Severity: SeverityError}
	case authClearNotice:
		s.Snackbar = Snackbar{}
		s.Err = ""
	}
	return s
}

// AuthSlice is the auth portion of the root store.
type AuthSlice struct {
	store *Store
	state AuthState
}

func (a *AuthSlice) Pending() {
	a.apply(authPending{})
}

func (a *AuthSlice) FulfillSignIn(session domain.Session) {
	a.apply(authSignedIn{session: session})
}

// Restore primes the slice from a persisted session without opening a
// notification.
func (a *AuthSlice) Restore(session domain.Session) {
	a.apply(authSignedIn{session: session, restored: true})
}

func (a *AuthSlice) FulfillSignOut() {
	a.apply(authSignedOut{})
}

func (a *AuthSlice) Reject(err error) {
	a.apply(authRejected{reason: err.Error()})
}

func (a *AuthSlice) ClearNotice() {
	a.apply(authClearNotice{})
}

// State returns a defensive copy of the auth state.
func (a *AuthSlice) State() AuthState {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	out := a.state
	if a.state.User != nil {
		user := *a.state.User
		out.User = &user
	}
	return out
}

func (a *AuthSlice) apply(act authAction) {
	a.store.apply(func() {
		a.state = reduceAuth(a.state, act)
	})
}
