// Package testutil provides shared helpers for package tests.
package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/db"
)

// NewTestDB opens an in-memory SQLite database, runs all migrations, and
// registers cleanup. The shared-cache DSN keyed by test name keeps each
// test's database isolated while surviving multiple connections.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_busy_timeout=5000"
	database, err := db.New("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.Migrate(database, "sqlite3"); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return database
}
