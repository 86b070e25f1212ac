package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type GalleryImage struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	Category    string    `db:"category"`
	CreatedAt   time.Time `db:"created_at"`
}

type GalleryStore struct {
	db *sqlx.DB
}

func NewGalleryStore(db *sqlx.DB) *GalleryStore {
	return &GalleryStore{db: db}
}

func (s *GalleryStore) q(query string) string { return s.db.Rebind(query) }

// List returns gallery images newest first. A non-empty category other than
// "all" filters the result; a category with no rows yields an empty slice.
func (s *GalleryStore) List(ctx context.Context, category string) ([]*GalleryImage, error) {
	images := []*GalleryImage{}
	if category != "" && category != "all" {
		err := s.db.SelectContext(ctx, &images, s.q(`
			SELECT * FROM gallery_images WHERE category = ? ORDER BY created_at DESC, id DESC
		`), category)
		if err != nil {
			return nil, err
		}
		return images, nil
	}
	err := s.db.SelectContext(ctx, &images, `SELECT * FROM gallery_images ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (s *GalleryStore) GetByID(ctx context.Context, id int64) (*GalleryImage, error) {
	var img GalleryImage
	err := s.db.GetContext(ctx, &img, s.q(`SELECT * FROM gallery_images WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *GalleryStore) Create(ctx context.Context, title, description, imageURL, category string) (*GalleryImage, error) {
	now := time.Now().UTC()
	id, err := insertedID(ctx, s.db, `
		INSERT INTO gallery_images (title, description, image_url, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, title, description, imageURL, category, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *GalleryStore) Update(ctx context.Context, id int64, title, description, imageURL, category string) (*GalleryImage, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE gallery_images SET title = ?, description = ?, image_url = ?, category = ? WHERE id = ?
	`), title, description, imageURL, category, id)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *GalleryStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM gallery_images WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
