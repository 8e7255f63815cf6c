package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NoMatchError reports a filtered fetch that matched zero rows. It is a
// deliberate pseudo-failure: the UI shows it as a warning, distinct from a
// genuine gateway error.
type NoMatchError struct {
	Resource string
}

func (e NoMatchError) Error() string {
	return fmt.Sprintf("No %s found", e.Resource)
}
