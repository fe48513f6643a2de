package adapter

import "errors"

// Sentinel errors mapped from API response status codes. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnauthorized is returned on a 401 response: bad credentials on
	// login, or a missing/expired bearer token on protected routes.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned on a 404 response: no customer with the
	// requested id exists.
	ErrNotFound = errors.New("customer not found")

	// ErrConflict is returned on a 409 response: the email is already in use.
	ErrConflict = errors.New("email already in use")

	// ErrBadRequest is returned on a 400 response: the request body was
	// rejected before reaching the service.
	ErrBadRequest = errors.New("invalid request")
)
