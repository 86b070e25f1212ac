package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type ContactSubmission struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Service   string    `db:"service"`
	Message   string    `db:"message"`
	Read      bool      `db:"read_flag"`
	CreatedAt time.Time `db:"created_at"`
}

type ContactStore struct {
	db *sqlx.DB
}

func NewContactStore(db *sqlx.DB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) q(query string) string { return s.db.Rebind(query) }

// ListAll returns all submissions newest first.
func (s *ContactStore) ListAll(ctx context.Context) ([]*ContactSubmission, error) {
	subs := []*ContactSubmission{}
	err := s.db.SelectContext(ctx, &subs, `SELECT * FROM contact_submissions ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *ContactStore) GetByID(ctx context.Context, id int64) (*ContactSubmission, error) {
	var sub ContactSubmission
	err := s.db.GetContext(ctx, &sub, s.q(`SELECT * FROM contact_submissions WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create inserts a submission with the read flag cleared.
func (s *ContactStore) Create(ctx context.Context, name, email, phone, service, message string) (*ContactSubmission, error) {
	now := time.Now().UTC()
	id, err := insertedID(ctx, s.db, `
		INSERT INTO contact_submissions (name, email, phone, service, message, read_flag, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, name, email, phone, service, message, false, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// MarkRead sets the read flag. The transition is false-to-true only and
// idempotent: marking an already-read submission succeeds without change.
func (s *ContactStore) MarkRead(ctx context.Context, id int64) (*ContactSubmission, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	_, err := s.db.ExecContext(ctx, s.q(`UPDATE contact_submissions SET read_flag = ? WHERE id = ?`), true, id)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ContactStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM contact_submissions WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// UnreadCount returns the number of submissions not yet marked read.
func (s *ContactStore) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.GetContext(ctx, &n, s.q(`SELECT COUNT(*) FROM contact_submissions WHERE read_flag = ?`), false)
	if err != nil {
		return 0, err
	}
	return n, nil
}
