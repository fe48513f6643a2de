package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/customer-management/internal/logger"
	"github.com/MKhiriev/customer-management/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func newTestCustomerRepo(t *testing.T) (*customerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &customerRepository{
		db: &DB{
			DB:        db,
			builder:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			conflicts: &postgresConflictClassifier{},
			dialect:   "pgx",
			logger:    l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateCustomer_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	customer := models.Customer{
		ID:    "0198c3a2-1111-7000-8000-000000000001",
		Name:  "Alice",
		Email: "a@x.com",
	}

	mock.ExpectExec("INSERT INTO customers").
		WithArgs(customer.ID, customer.Name, customer.Email, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateCustomer(ctx, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != customer.ID {
		t.Errorf("expected ID=%s, got %s", customer.ID, created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be assigned")
	}
}

func TestCreateCustomer_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	customer := models.Customer{ID: "id-1", Name: "Bob", Email: "a@x.com"}

	mock.ExpectExec("INSERT INTO customers").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCustomer(ctx, customer)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateCustomer_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	customer := models.Customer{ID: "id-1", Name: "Bob", Email: "a@x.com"}

	mock.ExpectExec("INSERT INTO customers").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateCustomer(ctx, customer)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindCustomerByID_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "created_at"}).
		AddRow("id-1", "Alice", "a@x.com", now)

	mock.ExpectQuery("SELECT id, name, email, created_at FROM customers").
		WithArgs("id-1").
		WillReturnRows(rows)

	found, err := repo.FindCustomerByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", found.Email)
	}
}

func TestFindCustomerByID_NotFound(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name, email, created_at FROM customers").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindCustomerByID(ctx, "missing")
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestFindCustomerByID_ScanError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow("id-1")

	mock.ExpectQuery("SELECT id, name, email, created_at FROM customers").
		WillReturnRows(rows)

	_, err := repo.FindCustomerByID(ctx, "id-1")
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestGetAllCustomers_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "created_at"}).
		AddRow("id-1", "Alice", "a@x.com", now).
		AddRow("id-2", "Bob", "b@x.com", now)

	mock.ExpectQuery("SELECT id, name, email, created_at FROM customers").
		WillReturnRows(rows)

	customers, err := repo.GetAllCustomers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
}

func TestGetAllCustomers_Empty(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "created_at"})

	mock.ExpectQuery("SELECT id, name, email, created_at FROM customers").
		WillReturnRows(rows)

	customers, err := repo.GetAllCustomers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customers == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(customers) != 0 {
		t.Fatalf("expected 0 customers, got %d", len(customers))
	}
}

func TestEmailExists_True(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"1"}).AddRow(1)

	mock.ExpectQuery("SELECT 1 FROM customers").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	exists, err := repo.EmailExists(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected email to exist")
	}
}

func TestEmailExists_False(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT 1 FROM customers").
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.EmailExists(ctx, "missing@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected email to be absent")
	}
}

func TestEmailExists_DBError(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT 1 FROM customers").
		WillReturnError(errors.New("db network error"))

	_, err := repo.EmailExists(ctx, "a@x.com")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestPostgresConflictClassifier(t *testing.T) {
	c := &postgresConflictClassifier{}

	if !c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)) {
		t.Error("expected unique_violation to be classified as unique violation")
	}
	if c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)) {
		t.Error("expected foreign_key_violation not to be classified as unique violation")
	}
	if c.IsUniqueViolation(errors.New("plain error")) {
		t.Error("expected plain error not to be classified as unique violation")
	}
	if c.IsUniqueViolation(nil) {
		t.Error("expected nil not to be classified as unique violation")
	}
}

func TestSQLiteConflictClassifier(t *testing.T) {
	c := &sqliteConflictClassifier{}

	uniqueErr := sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}
	if !c.IsUniqueViolation(uniqueErr) {
		t.Error("expected constraint_unique to be classified as unique violation")
	}

	busyErr := sqlite3.Error{Code: sqlite3.ErrBusy}
	if c.IsUniqueViolation(busyErr) {
		t.Error("expected busy error not to be classified as unique violation")
	}
	if c.IsUniqueViolation(errors.New("plain error")) {
		t.Error("expected plain error not to be classified as unique violation")
	}
}
