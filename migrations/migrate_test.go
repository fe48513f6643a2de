package migrations

import (
	"database/sql"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMigratedDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db, "sqlite3"))
	return db
}

func TestMigrate_CreatesCustomersTable(t *testing.T) {
	db := newMigratedDB(t)

	_, err := db.Exec(
		"INSERT INTO customers (id, name, email) VALUES (?, ?, ?)",
		"id-1", "Alice", "a@x.com",
	)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM customers").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_EmailUniqueConstraint(t *testing.T) {
	db := newMigratedDB(t)

	_, err := db.Exec(
		"INSERT INTO customers (id, name, email) VALUES (?, ?, ?)",
		"id-1", "Alice", "a@x.com",
	)
	require.NoError(t, err)

	_, err = db.Exec(
		"INSERT INTO customers (id, name, email) VALUES (?, ?, ?)",
		"id-2", "Bob", "a@x.com",
	)
	require.Error(t, err)

	var sqliteErr sqlite3.Error
	require.ErrorAs(t, err, &sqliteErr)
	assert.Equal(t, sqlite3.ErrConstraintUnique, sqliteErr.ExtendedCode)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newMigratedDB(t)

	// a second run must be a no-op, not a failure
	assert.NoError(t, Migrate(db, "sqlite3"))
}
