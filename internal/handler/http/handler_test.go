package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/customer-management/internal/logger"
	"github.com/MKhiriev/customer-management/internal/service"
	"github.com/MKhiriev/customer-management/models"
	"github.com/golang-jwt/jwt/v5"
)

// fakeAuthService implements service.AuthService with overridable behaviour
// per test.
type fakeAuthService struct {
	loginFn      func(ctx context.Context, username, password string) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (models.Token, error) {
	return f.loginFn(ctx, username, password)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

// fakeCustomerService implements service.CustomerService with overridable
// behaviour per test.
type fakeCustomerService struct {
	getAllFn  func(ctx context.Context) ([]models.Customer, error)
	getByIDFn func(ctx context.Context, id string) (models.Customer, error)
	addFn     func(ctx context.Context, name, email string) (models.Customer, error)
}

func (f *fakeCustomerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return f.getAllFn(ctx)
}

func (f *fakeCustomerService) GetCustomerByID(ctx context.Context, id string) (models.Customer, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeCustomerService) AddCustomer(ctx context.Context, name, email string) (models.Customer, error) {
	return f.addFn(ctx, name, email)
}

// newTestRouter builds the full router with the given fakes so tests exercise
// the same middleware chain as production.
func newTestRouter(auth service.AuthService, customers service.CustomerService) http.Handler {
	handler := NewHandler(&service.Services{
		AuthService:     auth,
		CustomerService: customers,
	}, logger.Nop())

	return handler.Init()
}

// acceptAnyToken is a ParseToken stub that authenticates every request as the
// admin principal.
func acceptAnyToken(_ context.Context, tokenString string) (models.Token, error) {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"},
		Role:             models.AdminRole,
		SignedString:     tokenString,
	}, nil
}

// rejectAnyToken is a ParseToken stub that rejects every request.
func rejectAnyToken(context.Context, string) (models.Token, error) {
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}
