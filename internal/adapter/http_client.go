package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/customer-management/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig holds connection settings for [NewHTTPAPIClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient constructs a REST implementation of [APIClient] on top of
// a resty client with the given base URL and request timeout.
func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) bearer() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Username: username, Password: password}).
		Post("/api/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var tokenResponse models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokenResponse); err != nil {
		return "", fmt.Errorf("login parse response: %w", err)
	}
	if tokenResponse.Token == "" {
		return "", fmt.Errorf("login: empty token in response")
	}

	h.SetToken(tokenResponse.Token)
	return tokenResponse.Token, nil
}

func (h *httpAPIClient) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.bearer()).
		Get("/api/customers")
	if err != nil {
		return nil, fmt.Errorf("list customers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// the server answers 204 with no body when the store is empty
	if resp.StatusCode() == http.StatusNoContent {
		return []models.Customer{}, nil
	}

	var customers []models.Customer
	if err = json.Unmarshal(resp.Body(), &customers); err != nil {
		return nil, fmt.Errorf("list customers parse response: %w", err)
	}

	return customers, nil
}

func (h *httpAPIClient) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.bearer()).
		Get("/api/customers/" + id)
	if err != nil {
		return models.Customer{}, fmt.Errorf("get customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	var customer models.Customer
	if err = json.Unmarshal(resp.Body(), &customer); err != nil {
		return models.Customer{}, fmt.Errorf("get customer parse response: %w", err)
	}

	return customer, nil
}

func (h *httpAPIClient) AddCustomer(ctx context.Context, name, email string) (models.Customer, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.bearer()).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CustomerRequest{Name: name, Email: email}).
		Post("/api/customers")
	if err != nil {
		return models.Customer{}, fmt.Errorf("add customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	var customer models.Customer
	if err = json.Unmarshal(resp.Body(), &customer); err != nil {
		return models.Customer{}, fmt.Errorf("add customer parse response: %w", err)
	}

	return customer, nil
}

// mapHTTPError translates a non-2xx response into one of the package's
// sentinel errors.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
}
