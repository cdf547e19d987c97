package store

import (
	"github.com/shubhamkr/streamtube-backend/migrations"
)

// Migrate applies all pending schema migrations embedded in the binary.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
