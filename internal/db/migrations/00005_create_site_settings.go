package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSiteSettings, downCreateSiteSettings)
}

func upCreateSiteSettings(ctx context.Context, tx *sql.Tx) error {
	text := "TEXT"
	if dialect == "mysql" {
		text = "VARCHAR(255)"
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS site_settings (
    %s,
    site_name       %s NOT NULL,
    contact_email   %s NOT NULL,
    contact_phone   %s NOT NULL,
    address         %s NOT NULL,
    business_hours  TEXT NOT NULL,
    %s,
    primary_color   %s NOT NULL,
    secondary_color %s NOT NULL,
    updated_at      TIMESTAMP NOT NULL
)`, autoIncPK(), text, text, text, text, boolCol("maintenance_mode", false), text, text)
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create site_settings table: %w", err)
	}
	return nil
}

func downCreateSiteSettings(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS site_settings`)
	return err
}
