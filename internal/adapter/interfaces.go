// Package adapter provides the client-side HTTP adapter for the
// customer-management REST API. It is consumed by the admin CLI and can be
// reused by any Go program that needs programmatic access to the service.
package adapter

import (
	"context"

	"github.com/MKhiriev/customer-management/models"
)

// APIClient is the programmatic surface of the customer-management REST API.
type APIClient interface {
	// Login exchanges the credential pair for a bearer token. The token is
	// remembered by the client and attached to subsequent requests.
	Login(ctx context.Context, username, password string) (string, error)

	// GetCustomers lists all customers. An empty store yields an empty slice.
	GetCustomers(ctx context.Context) ([]models.Customer, error)

	// GetCustomer retrieves a single customer by id.
	GetCustomer(ctx context.Context, id string) (models.Customer, error)

	// AddCustomer creates a new customer and returns the stored record.
	AddCustomer(ctx context.Context, name, email string) (models.Customer, error)

	// SetToken replaces the bearer token attached to subsequent requests.
	SetToken(token string)
}
