package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/customer-management/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenParams groups the trust parameters needed to issue and validate JWT
// tokens. All fields are required.
type TokenParams struct {
	// Issuer is embedded as the "iss" claim and checked during validation.
	Issuer string

	// Audience is embedded as the "aud" claim and checked during validation.
	Audience string

	// Duration is how long an issued token remains valid.
	Duration time.Duration

	// ClockSkew is the leeway applied to time-based claim checks during
	// validation. It does not extend the token lifetime at issuance.
	ClockSkew time.Duration

	// SignKey is the HMAC-SHA256 secret used to sign and verify tokens.
	SignKey string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given
// principal.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): identifies the intended token consumers
//   - Subject   (sub): the principal's username
//   - ID        (jti): a caller-supplied unique token identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus params.Duration
//   - role           : the principal's authorization role
//
// Returns an error if the principal or any trust parameter is empty or zero.
func GenerateJWTToken(principal models.Principal, tokenID string, params TokenParams) (models.Token, error) {
	if principal.Username == "" || tokenID == "" {
		return models.Token{}, errors.New("invalid principal for generating JWT Token")
	}
	if params.Issuer == "" || params.Audience == "" || params.Duration == 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Audience:  jwt.ClaimStrings{params.Audience},
			Subject:   principal.Username,
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: principal.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString

	return *claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using params.SignKey (HS256 only)
//   - Issuer (iss) claim check against params.Issuer
//   - Audience (aud) claim check against params.Audience
//   - Expiration (exp) claim check with params.ClockSkew leeway
//   - Subject (sub) claim presence
//
// Returns the decoded token model on success or an error if any check fails.
func ValidateAndParseJWTToken(tokenString string, params TokenParams) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithAudience(params.Audience),
		jwt.WithLeeway(params.ClockSkew),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errors.New("unexpected token claims type")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	claims.Token = token
	claims.SignedString = tokenString

	return *claims, nil
}

// ParseBearerToken extracts the token value from a raw "Authorization" HTTP
// header of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
