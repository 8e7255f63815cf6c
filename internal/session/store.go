// Package session is the durable client-side key-value store holding the
// signed-in session: one entry for the access token, one for the user
// record. It is written on sign-in, removed on sign-out, and read once at
// application start to restore the session.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"crm-backoffice/internal/domain"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const (
	keyToken = "accessToken"
	keyUser  = "user"
)

// Store persists the session to a single sqlite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the session database at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping session db: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes both session entries atomically, replacing any previous
// session.
func (s *Store) Save(ctx context.Context, sess domain.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	const q = `
INSERT INTO session (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value
`
	if _, err := tx.ExecContext(ctx, q, keyToken, sess.AccessToken); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, q, keyUser, string(userJSON)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return tx.Commit()
}

// Load reads the persisted session, or domain.ErrNotFound when no session
// is stored.
func (s *Store) Load(ctx context.Context) (*domain.Session, error) {
	token, err := s.get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	userJSON, err := s.get(ctx, keyUser)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &domain.Session{AccessToken: token, User: user}, nil
}

// Clear removes both session entries. Clearing an absent session is not an
// error.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}
