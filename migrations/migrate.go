// Package migrations embeds the SQL schema migrations for the datebook
// server and applies them with goose at startup.
//
// Both supported drivers ship their own migration set because the schemas
// diverge on identity columns and timestamp defaults.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Drivers accepted by [Migrate]. They match the driver names used by
// [database/sql.Open] in the store package.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Migrate applies all pending migrations for the given driver.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	var dialect, dir string
	switch driver {
	case DriverPostgres:
		dialect, dir = "postgres", "postgres"
	case DriverSQLite:
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
