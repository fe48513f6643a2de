package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/customer-management/internal/config"
	"github.com/MKhiriev/customer-management/internal/logger"
	"github.com/MKhiriev/customer-management/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register the "pgx" database/sql driver
)

// DB wraps a *sql.DB together with the dialect-specific pieces the
// repositories need: a squirrel statement builder configured with the right
// placeholder format and a classifier for unique-constraint violations.
type DB struct {
	*sql.DB
	builder   sq.StatementBuilderType
	conflicts ConflictClassifier
	dialect   string
	logger    *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection using the pgx stdlib
// driver, verifies it with a ping, and returns a [DB] configured for
// dollar-sign placeholders and PostgreSQL error classification.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:        conn,
		builder:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		conflicts: &postgresConflictClassifier{},
		dialect:   "pgx",
		logger:    log,
	}, nil
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// postgresConflictClassifier implements [ConflictClassifier] for PostgreSQL
// by inspecting the pgconn error code returned by the pgx driver.
type postgresConflictClassifier struct{}

// IsUniqueViolation reports whether err is a PostgreSQL unique_violation
// (code 23505).
func (c *postgresConflictClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}
