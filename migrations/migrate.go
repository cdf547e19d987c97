// Package migrations carries the SQL schema for the users database, embedded
// into the binary and applied with goose at startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schema embed.FS

// Migrate brings db up to the latest embedded schema version. Already-applied
// versions are skipped, so running it on every boot is safe.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(schema)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
