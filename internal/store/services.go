package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// FeatureList is an ordered list of feature strings stored as a JSON text
// column, the only array representation portable across all three dialects.
type FeatureList []string

// Value implements driver.Valuer.
func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		f = FeatureList{}
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal features: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (f *FeatureList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = FeatureList{}
		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("cannot scan %T into FeatureList", src)
	}
}

type Service struct {
	ID          int64       `db:"id"`
	Name        string      `db:"name"`
	Description string      `db:"description"`
	PriceRange  string      `db:"price_range"`
	Features    FeatureList `db:"features"`
	ImageURL    string      `db:"image_url"`
	Category    string      `db:"category"`
	CreatedAt   time.Time   `db:"created_at"`
}

type ServiceStore struct {
	db *sqlx.DB
}

func NewServiceStore(db *sqlx.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *ServiceStore) q(query string) string { return s.db.Rebind(query) }

// ListAll returns all services ordered by id.
func (s *ServiceStore) ListAll(ctx context.Context) ([]*Service, error) {
	services := []*Service{}
	err := s.db.SelectContext(ctx, &services, `SELECT * FROM services ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID returns the service with the given id, or ErrNotFound.
func (s *ServiceStore) GetByID(ctx context.Context, id int64) (*Service, error) {
	var svc Service
	err := s.db.GetContext(ctx, &svc, s.q(`SELECT * FROM services WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *ServiceStore) Create(ctx context.Context, name, description, priceRange, imageURL, category string, features []string) (*Service, error) {
	now := time.Now().UTC()
	id, err := insertedID(ctx, s.db, `
		INSERT INTO services (name, description, price_range, features, image_url, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, name, description, priceRange, FeatureList(features), imageURL, category, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ServiceStore) Update(ctx context.Context, id int64, name, description, priceRange, imageURL, category string, features []string) (*Service, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE services SET name = ?, description = ?, price_range = ?, features = ?, image_url = ?, category = ?
		WHERE id = ?
	`), name, description, priceRange, FeatureList(features), imageURL, category, id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// RowsAffected can be 0 for a no-op update of an existing row on
		// MySQL, so confirm absence before reporting not found.
		if _, getErr := s.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
	}
	return s.GetByID(ctx, id)
}

func (s *ServiceStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM services WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// insertedID executes an INSERT (written with ? placeholders) and returns the
// new row's auto-increment id. lib/pq does not implement LastInsertId, so the
// PostgreSQL path appends RETURNING id instead of reading the result.
func insertedID(ctx context.Context, db *sqlx.DB, query string, args ...any) (int64, error) {
	var id int64
	if db.DriverName() == "postgres" {
		if err := db.QueryRowContext(ctx, db.Rebind(query+` RETURNING id`), args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert returning id: %w", err)
		}
		return id, nil
	}
	res, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted id: %w", err)
	}
	return id, nil
}
