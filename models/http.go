package models

// LoginRequest is the JSON body of POST /api/login.
type LoginRequest struct {
	// Username is the login of the principal requesting a token.
	Username string `json:"username"`

	// Password is the plain-text secret matched against the configured
	// credential. Transmitted only over the login request; never stored.
	Password string `json:"password"`
}

// TokenResponse is the JSON body returned on a successful login.
type TokenResponse struct {
	// Token is the compact signed JWT to be presented as a bearer
	// credential on protected routes.
	Token string `json:"token"`
}

// CustomerRequest is the JSON body of POST /api/customers.
// The server assigns the ID; clients supply only name and email.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Principal is the identity produced by a successful credential check.
// It carries everything token issuance needs and nothing it does not.
type Principal struct {
	// Username is the authenticated login, embedded as the "sub" claim.
	Username string `json:"username"`

	// Role is the authorization role granted to the principal.
	Role string `json:"role"`
}
