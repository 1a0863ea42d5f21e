package store

import (
	"database/sql"

	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/migrations"
)

// DB wraps the raw sql connection together with the driver name and an
// error classifier so repositories can stay driver-agnostic.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
