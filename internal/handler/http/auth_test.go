package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/customer-management/internal/service"
	"github.com/MKhiriev/customer-management/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler_Success(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(_ context.Context, username, password string) (models.Token, error) {
			require.Equal(t, "admin", username)
			require.Equal(t, "password", password)
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	router := newTestRouter(auth, &fakeCustomerService{})

	body := strings.NewReader(`{"username":"admin","password":"password"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/login", body)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var tokenResponse models.TokenResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tokenResponse))
	assert.Equal(t, "signed.jwt.token", tokenResponse.Token)
}

func TestLoginHandler_InvalidJSON(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(context.Context, string, string) (models.Token, error) {
			t.Fatal("Login must not be called for malformed JSON")
			return models.Token{}, nil
		},
	}
	router := newTestRouter(auth, &fakeCustomerService{})

	request := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLoginHandler_EmptyCredentials(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(context.Context, string, string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidDataProvided
		},
	}
	router := newTestRouter(auth, &fakeCustomerService{})

	body := strings.NewReader(`{"username":"","password":""}`)
	request := httptest.NewRequest(http.MethodPost, "/api/login", body)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLoginHandler_WrongCredentials(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(context.Context, string, string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(auth, &fakeCustomerService{})

	body := strings.NewReader(`{"username":"admin","password":"wrong"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/login", body)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLoginHandler_UnexpectedFailure(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(context.Context, string, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	router := newTestRouter(auth, &fakeCustomerService{})

	body := strings.NewReader(`{"username":"admin","password":"password"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/login", body)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
