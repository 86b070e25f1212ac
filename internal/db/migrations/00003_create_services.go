package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateServices, downCreateServices)
}

func upCreateServices(ctx context.Context, tx *sql.Tx) error {
	text := "TEXT"
	if dialect == "mysql" {
		text = "VARCHAR(255)"
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS services (
    %s,
    name        %s NOT NULL,
    description TEXT NOT NULL,
    price_range %s NOT NULL DEFAULT '',
    features    TEXT NOT NULL,
    image_url   %s NOT NULL DEFAULT '',
    category    %s NOT NULL,
    created_at  TIMESTAMP NOT NULL
)`, autoIncPK(), text, text, text, text)
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create services table: %w", err)
	}
	return nil
}

func downCreateServices(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS services`)
	return err
}
