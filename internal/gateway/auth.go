package gateway

import (
	"context"
	"strings"
	"time"

	"crm-backoffice/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "crm-backoffice"

// Authenticator validates the single hardcoded credential pair and issues
// signed access tokens for it. Anything beyond that binary check is out of
// scope for the mock backend.
type Authenticator struct {
	email     string
	password  string
	secret    []byte
	accessTTL time.Duration
	user      domain.User
	now       func() time.Time
}

// NewAuthenticator builds an Authenticator for the given credential pair.
func NewAuthenticator(email, password, secret string, user domain.User) *Authenticator {
	return &Authenticator{
		email:     strings.TrimSpace(strings.ToLower(email)),
		password:  password,
		secret:    []byte(secret),
		accessTTL: 48 * time.Hour,
		user:      user,
		now:       time.Now,
	}
}

// SignIn checks the credentials and returns a session with a fresh access
// token, or domain.ErrInvalidCredentials.
func (a *Authenticator) SignIn(_ context.Context, email, password string) (*domain.Session, error) {
	if strings.TrimSpace(strings.ToLower(email)) != a.email || password != a.password {
		return nil, domain.ErrInvalidCredentials
	}

	now := a.now().UTC()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   a.user.ID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.accessTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, err
	}
	return &domain.Session{AccessToken: signed, User: a.user}, nil
}

// Verify parses and validates an access token, including expiry.
func (a *Authenticator) Verify(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return jwt.ErrTokenSignatureInvalid
	}
	return nil
}

// User returns the account behind the hardcoded credentials.
func (a *Authenticator) User() domain.User {
	return a.user
}
