package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateContactSubmissions, downCreateContactSubmissions)
}

func upCreateContactSubmissions(ctx context.Context, tx *sql.Tx) error {
	text := "TEXT"
	if dialect == "mysql" {
		text = "VARCHAR(255)"
	}
	// "read" is a reserved-ish word in some dialects; the column is named
	// read_flag and mapped to "read" in JSON at the API layer.
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS contact_submissions (
    %s,
    name       %s NOT NULL,
    email      %s NOT NULL,
    phone      %s NOT NULL,
    service    %s NOT NULL,
    message    TEXT NOT NULL,
    %s,
    created_at TIMESTAMP NOT NULL
)`, autoIncPK(), text, text, text, text, boolCol("read_flag", false))
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create contact_submissions table: %w", err)
	}
	if dialect == "mysql" {
		_, err := tx.ExecContext(ctx, `CREATE INDEX contact_submissions_created_idx ON contact_submissions (created_at)`)
		return err
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS contact_submissions_created_idx ON contact_submissions (created_at)`)
	return err
}

func downCreateContactSubmissions(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS contact_submissions`)
	return err
}
