package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/customer-management/internal/utils"
	"github.com/MKhiriev/customer-management/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newTestRouter(&fakeAuthService{parseTokenFn: acceptAnyToken}, &fakeCustomerService{})

	request := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := newTestRouter(&fakeAuthService{parseTokenFn: acceptAnyToken}, &fakeCustomerService{})

	tests := []struct {
		name   string
		header string
	}{
		{name: "scheme only", header: "Bearer"},
		{name: "empty token", header: "Bearer "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
			request.Header.Set("Authorization", test.header)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	router := newTestRouter(&fakeAuthService{parseTokenFn: rejectAnyToken}, &fakeCustomerService{
		getAllFn: func(context.Context) ([]models.Customer, error) {
			t.Fatal("handler must not run for a rejected token")
			return nil, nil
		},
	})

	request := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	request.Header.Set("Authorization", "Bearer expired.jwt.token")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_PrincipalInContext(t *testing.T) {
	var seen models.Principal
	customers := &fakeCustomerService{
		getAllFn: func(ctx context.Context) ([]models.Customer, error) {
			principal, ok := utils.GetPrincipalFromContext(ctx)
			require.True(t, ok)
			seen = principal
			return []models.Customer{}, nil
		},
	}
	router := newTestRouter(&fakeAuthService{parseTokenFn: acceptAnyToken}, customers)

	request := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	request.Header.Set("Authorization", "Bearer some.jwt.token")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "admin", seen.Username)
	assert.Equal(t, models.AdminRole, seen.Role)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
