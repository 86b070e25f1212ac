// Package migrations contains dialect-aware Go database migrations that cannot
// be expressed as a single cross-database SQL statement.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}

// autoIncPK returns the primary key column DDL for an auto-incrementing
// integer id in the configured dialect.
func autoIncPK() string {
	switch dialect {
	case "postgres":
		return "id BIGSERIAL PRIMARY KEY"
	case "mysql":
		return "id BIGINT AUTO_INCREMENT PRIMARY KEY"
	default: // sqlite3
		return "id INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}

// boolCol returns a boolean column with default in the configured dialect.
func boolCol(name string, def bool) string {
	d := "0"
	if def {
		d = "1"
	}
	switch dialect {
	case "postgres":
		if def {
			return name + " BOOLEAN NOT NULL DEFAULT TRUE"
		}
		return name + " BOOLEAN NOT NULL DEFAULT FALSE"
	default: // sqlite3, mysql
		return name + " BOOLEAN NOT NULL DEFAULT " + d
	}
}
