package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"crm-backoffice/internal/domain"
	"crm-backoffice/internal/store"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticator is the sign-in endpoint of the gateway.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
}

// Sessions is the durable client-side key-value store holding the session.
type Sessions interface {
	Save(ctx context.Context, s domain.Session) error
	Load(ctx context.Context) (*domain.Session, error)
	Clear(ctx context.Context) error
}

// Service runs the sign-in/sign-out thunks and restores a persisted
// session at application start.
type Service struct {
	auth     Authenticator
	sessions Sessions
	slice    *store.AuthSlice
	logger   *log.Logger
}

func New(auth Authenticator, sessions Sessions, st *store.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{auth: auth, sessions: sessions, slice: st.Auth, logger: logger}
}

// SignIn authenticates, persists the session, and settles the auth slice.
// A persistence failure is logged but does not fail the sign-in; the
// session simply will not survive a restart.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	s.slice.Pending()
	session, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		err = fmt.Errorf("sign in: %w", err)
		s.slice.Reject(err)
		return nil, err
	}
	if err := s.sessions.Save(ctx, *session); err != nil {
		s.logger.Printf("auth: persist session: %v", err)
	}
	s.slice.FulfillSignIn(*session)
	return session, nil
}

// SignOut clears the persisted session and the auth slice.
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("auth: clear session: %v", err)
	}
	s.slice.FulfillSignOut()
	return nil
}

// Restore loads the persisted session, drops it if the token has expired,
// and otherwise primes the auth slice silently. It reports whether a
// session was restored.
func (s *Service) Restore(ctx context.Context) (bool, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load session: %w", err)
	}
	if tokenExpired(session.AccessToken) {
		if err := s.sessions.Clear(ctx); err != nil {
			s.logger.Printf("auth: clear expired session: %v", err)
		}
		return false, nil
	}
	s.slice.Restore(*session)
	return true, nil
}

// tokenExpired checks the exp claim without verifying the signature; the
// client never holds the signing secret, and the server re-verifies on use.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}
