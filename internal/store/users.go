package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	DisplayName  string    `db:"display_name"`
	PasswordHash string    `db:"password_hash"`
	Provider     string    `db:"provider"`
	Subject      string    `db:"subject"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a credential-login user (see the create-admin command).
func (s *UserStore) Create(ctx context.Context, email, displayName, passwordHash string) (*User, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO users (id, email, display_name, password_hash, provider, subject, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, '', ?, 'admin', ?, ?)
	`), id, email, displayName, passwordHash, id, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// UpsertSSO creates or updates a user record on OIDC login, keyed by the
// (provider, subject) pair. The password hash of an existing credential
// user is preserved.
func (s *UserStore) UpsertSSO(ctx context.Context, provider, subject, email, displayName string) (*User, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	// ON CONFLICT ... DO UPDATE works for SQLite and PostgreSQL; MySQL is
	// handled with its native upsert form.
	var err error
	if s.db.DriverName() == "mysql" {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO users (id, email, display_name, password_hash, provider, subject, role, created_at, updated_at)
			VALUES (?, ?, ?, '', ?, ?, 'admin', ?, ?)
			ON DUPLICATE KEY UPDATE email = VALUES(email), display_name = VALUES(display_name), updated_at = VALUES(updated_at)
		`, id, email, displayName, provider, subject, now, now)
	} else {
		_, err = s.db.ExecContext(ctx, s.q(`
			INSERT INTO users (id, email, display_name, password_hash, provider, subject, role, created_at, updated_at)
			VALUES (?, ?, ?, '', ?, ?, 'admin', ?, ?)
			ON CONFLICT (provider, subject) DO UPDATE SET
				email = excluded.email,
				display_name = excluded.display_name,
				updated_at = excluded.updated_at
		`), id, email, displayName, provider, subject, now, now)
	}
	if err != nil {
		return nil, err
	}

	var u User
	err = s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE provider = ? AND subject = ?`), provider, subject)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns the user matching email, or ErrNotFound.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE email = ?`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
