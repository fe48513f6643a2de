package store

import (
	"context"

	"github.com/MKhiriev/customer-management/models"
)

// CustomerRepository is the persistence port the service layer depends on.
// Any durable store satisfying this contract is substitutable; this package
// ships PostgreSQL and SQLite implementations.
type CustomerRepository interface {
	// CreateCustomer persists a new customer record atomically and returns
	// the canonical stored representation. A duplicate email is reported as
	// [ErrEmailAlreadyExists].
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)

	// FindCustomerByID retrieves a single customer by its identifier.
	// An absent record is reported as [ErrCustomerNotFound].
	FindCustomerByID(ctx context.Context, id string) (models.Customer, error)

	// GetAllCustomers lists every stored customer. An empty store yields an
	// empty slice, not an error.
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)

	// EmailExists reports whether any stored customer has the given email.
	EmailExists(ctx context.Context, email string) (bool, error)
}

// ConflictClassifier recognises driver-level unique-constraint violations so
// the repository can translate them into [ErrEmailAlreadyExists] regardless
// of the backend in use.
type ConflictClassifier interface {
	IsUniqueViolation(err error) bool
}
