package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateGalleryImages, downCreateGalleryImages)
}

func upCreateGalleryImages(ctx context.Context, tx *sql.Tx) error {
	text := "TEXT"
	if dialect == "mysql" {
		text = "VARCHAR(255)"
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS gallery_images (
    %s,
    title       %s NOT NULL,
    description TEXT NOT NULL,
    image_url   %s NOT NULL,
    category    %s NOT NULL,
    created_at  TIMESTAMP NOT NULL
)`, autoIncPK(), text, text, text)
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create gallery_images table: %w", err)
	}
	if dialect == "mysql" {
		_, err := tx.ExecContext(ctx, `CREATE INDEX gallery_images_category_idx ON gallery_images (category)`)
		return err
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS gallery_images_category_idx ON gallery_images (category)`)
	return err
}

func downCreateGalleryImages(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS gallery_images`)
	return err
}
