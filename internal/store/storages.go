package store

import (
	"context"

	"github.com/MKhiriev/customer-management/internal/config"
	"github.com/MKhiriev/customer-management/internal/logger"
)

// Storages aggregates all repositories the service layer depends on.
type Storages struct {
	CustomerRepository CustomerRepository
}

// NewStorages connects to the configured persistence backend, applies the
// embedded schema migrations, and returns the repository aggregate.
//
// Backend selection: a non-empty PostgreSQL DSN wins; otherwise the SQLite
// file path is used. Config validation guarantees at least one is set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if cfg.DB.DSN != "" {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.SQLite, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		CustomerRepository: NewCustomerRepository(db, log),
	}, nil
}
