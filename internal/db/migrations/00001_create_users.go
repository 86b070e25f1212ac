package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsers, downCreateUsers)
}

func upCreateUsers(ctx context.Context, tx *sql.Tx) error {
	ddl := `CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL,
    display_name  TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL DEFAULT '',
    provider      TEXT NOT NULL DEFAULT '',
    subject       TEXT NOT NULL DEFAULT '',
    role          TEXT NOT NULL DEFAULT 'admin',
    created_at    TIMESTAMP NOT NULL,
    updated_at    TIMESTAMP NOT NULL
)`
	if dialect == "mysql" {
		ddl = `CREATE TABLE IF NOT EXISTS users (
    id            VARCHAR(36) PRIMARY KEY,
    email         VARCHAR(255) NOT NULL,
    display_name  VARCHAR(255) NOT NULL DEFAULT '',
    password_hash VARCHAR(255) NOT NULL DEFAULT '',
    provider      VARCHAR(255) NOT NULL DEFAULT '',
    subject       VARCHAR(255) NOT NULL DEFAULT '',
    role          VARCHAR(32) NOT NULL DEFAULT 'admin',
    created_at    TIMESTAMP NOT NULL,
    updated_at    TIMESTAMP NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, uniqueIndex("users_email_idx", "users", "email")); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, uniqueIndex("users_provider_subject_idx", "users", "provider, subject"))
	return err
}

func downCreateUsers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS users`)
	return err
}

// uniqueIndex builds a CREATE UNIQUE INDEX statement. MySQL has no
// IF NOT EXISTS for indexes, but these migrations run exactly once.
func uniqueIndex(name, table, cols string) string {
	if dialect == "mysql" {
		return fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s (%s)", name, table, cols)
	}
	return fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s)", name, table, cols)
}
