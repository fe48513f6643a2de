package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/customer-management/internal/config"
	"github.com/MKhiriev/customer-management/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens (or creates) a SQLite database file and returns a
// [DB] configured for question-mark placeholders and SQLite error
// classification. Foreign keys are enabled and a busy timeout is set so
// concurrent requests queue instead of failing immediately.
func NewConnectSQLite(ctx context.Context, cfg config.SQLite, log *logger.Logger) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// sqlite serialises writers; a single connection avoids SQLITE_BUSY churn
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", cfg.Path).Msg("connected to database successfully")

	return &DB{
		DB:        conn,
		builder:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
		conflicts: &sqliteConflictClassifier{},
		dialect:   "sqlite3",
		logger:    log,
	}, nil
}

// sqliteConflictClassifier implements [ConflictClassifier] for SQLite by
// inspecting the extended result code returned by mattn/go-sqlite3.
type sqliteConflictClassifier struct{}

// IsUniqueViolation reports whether err is a SQLITE_CONSTRAINT_UNIQUE or
// SQLITE_CONSTRAINT_PRIMARYKEY violation.
func (c *sqliteConflictClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
