package store

import (
	"github.com/shubhamkr/streamtube-backend/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}
}
