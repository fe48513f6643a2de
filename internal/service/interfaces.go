package service

import (
	"context"

	"github.com/MKhiriev/customer-management/models"
)

// CustomerService orchestrates the customer lifecycle against the persistence
// port and enforces the email-uniqueness invariant.
type CustomerService interface {
	// GetAllCustomers lists all known customers. An empty store yields an
	// empty slice.
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)

	// GetCustomerByID returns the customer with the given id, or
	// store.ErrCustomerNotFound when no record matches.
	GetCustomerByID(ctx context.Context, id string) (models.Customer, error)

	// AddCustomer creates and persists a new customer. A duplicate email is
	// reported as store.ErrEmailAlreadyExists and performs no write.
	AddCustomer(ctx context.Context, name, email string) (models.Customer, error)
}

// AuthService authenticates principals and manages the JWT token lifecycle.
type AuthService interface {
	// Login verifies the credential pair and, on success, issues a signed
	// token for the authenticated principal. A rejected credential is
	// reported as ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.Token, error)

	// ParseToken validates a raw JWT string (signature, issuer, audience,
	// expiry) and returns its claims. Any failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialVerifier is the credential-lookup capability behind [AuthService].
// The default implementation holds the single configured admin credential; a
// real credential store can be substituted without touching token issuance.
type CredentialVerifier interface {
	// Verify checks the username/password pair and returns the authenticated
	// principal, or ErrInvalidCredentials when the pair is not recognised.
	Verify(ctx context.Context, username, password string) (models.Principal, error)
}

// IDGenerator produces unique identifiers for customers and token IDs.
// Injected so tests can supply deterministic values.
type IDGenerator interface {
	Generate() string
}
