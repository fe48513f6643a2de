package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/customer-management/internal/logger"
	"github.com/MKhiriev/customer-management/models"
)

// customerRepository is the SQL-backed implementation of [CustomerRepository].
// It works against any [DB] regardless of dialect: queries are built with the
// connection's squirrel builder and driver errors are translated through the
// connection's [ConflictClassifier].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCustomer persists a new customer record. The record is written in a
// single INSERT, so it is either fully stored or not at all.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists]
//     (the database backstop for the service-level pre-check);
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *customerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.builder.
		Insert(customer.TableName()).
		Columns("id", "name", "email", "created_at").
		Values(customer.ID, customer.Name, customer.Email, customer.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error: building query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error: executing insert")

		if r.db.conflicts.IsUniqueViolation(err) {
			return models.Customer{}, ErrEmailAlreadyExists
		}
		return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return customer, nil
}

// FindCustomerByID retrieves a single customer record by its identifier.
//
// Error handling:
//   - empty result set → [ErrCustomerNotFound];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *customerRepository) FindCustomerByID(ctx context.Context, id string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "name", "email", "created_at").
		From(models.Customer{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindCustomerByID").Msg("error: building query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Customer
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.ID, &found.Name, &found.Email, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}

		log.Err(err).Str("func", "*customerRepository.FindCustomerByID").Msg("error: scanning error")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetAllCustomers lists every stored customer ordered by creation time.
// An empty store yields an empty slice.
func (r *customerRepository) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "name", "email", "created_at").
		From(models.Customer{}.TableName()).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetAllCustomers").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetAllCustomers").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var customer models.Customer
		if err = rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.CreatedAt); err != nil {
			log.Err(err).Str("func", "*customerRepository.GetAllCustomers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		customers = append(customers, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}

// EmailExists reports whether any stored customer has the given email.
// It is a read-only pre-check; the unique constraint on the email column
// remains the authoritative guarantee under concurrent adds.
func (r *customerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("1").
		From(models.Customer{}.TableName()).
		Where("email = ?", email).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.EmailExists").Msg("error: building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*customerRepository.EmailExists").Msg("error: executing query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
