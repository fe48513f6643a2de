package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/customer-management/internal/logger"
	"github.com/MKhiriev/customer-management/internal/store"
	"github.com/MKhiriev/customer-management/models"
)

// customerService is the concrete implementation of CustomerService.
// It depends only on the [store.CustomerRepository] port and an injected
// identifier generator; it holds no mutable state of its own, so a single
// instance is safe for concurrent use.
type customerService struct {
	// customerRepository is the persistence port for customer records.
	customerRepository store.CustomerRepository

	// idGenerator produces the identifiers assigned to new customers.
	idGenerator IDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewCustomerService constructs a CustomerService wired to the given
// repository and identifier generator.
func NewCustomerService(customerRepository store.CustomerRepository, idGenerator IDGenerator, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		idGenerator:        idGenerator,
		logger:             logger,
	}
}

// GetAllCustomers lists every stored customer.
func (s *customerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	customers, err := s.customerRepository.GetAllCustomers(ctx)
	if err != nil {
		log.Err(err).Msg("listing customers failed")
		return nil, fmt.Errorf("listing customers failed: %w", err)
	}

	return customers, nil
}

// GetCustomerByID returns the customer with the given id.
//
// Returns ErrInvalidDataProvided for an empty id and passes
// store.ErrCustomerNotFound through for an absent record; absence is a
// regular outcome at this layer, not an internal failure.
func (s *customerService) GetCustomerByID(ctx context.Context, id string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		log.Error().Msg("empty customer id provided")
		return models.Customer{}, ErrInvalidDataProvided
	}

	customer, err := s.customerRepository.FindCustomerByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("customer search by id failed")
		return models.Customer{}, fmt.Errorf("customer search by id failed: %w", err)
	}

	return customer, nil
}

// AddCustomer creates a new customer with a freshly generated identifier and
// persists it.
//
// The email-uniqueness invariant is enforced twice: a repository pre-check
// produces the user-facing conflict without attempting a write, and the
// database unique constraint backstops the remaining check-then-act window
// between two concurrent adds. Both paths surface store.ErrEmailAlreadyExists.
func (s *customerService) AddCustomer(ctx context.Context, name, email string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" {
		log.Error().Str("name", name).Str("email", email).Msg("invalid customer data provided")
		return models.Customer{}, ErrInvalidDataProvided
	}

	exists, err := s.customerRepository.EmailExists(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("email existence check failed")
		return models.Customer{}, fmt.Errorf("email existence check failed: %w", err)
	}
	if exists {
		log.Warn().Str("email", email).Msg("email already in use")
		return models.Customer{}, store.ErrEmailAlreadyExists
	}

	customer := models.Customer{
		ID:    s.idGenerator.Generate(),
		Name:  name,
		Email: email,
	}

	created, err := s.customerRepository.CreateCustomer(ctx, customer)
	if err != nil {
		log.Err(err).Str("email", email).Msg("customer creation ended with error")
		return models.Customer{}, fmt.Errorf("customer creation ended with error: %w", err)
	}

	log.Info().Str("id", created.ID).Msg("customer created")

	return created, nil
}
