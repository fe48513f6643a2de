package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/customer-management/internal/config"
	"github.com/MKhiriev/customer-management/internal/logger"
	"github.com/MKhiriev/customer-management/internal/utils"
	"github.com/MKhiriev/customer-management/models"
)

// authService is the concrete implementation of AuthService.
// Credential checking is delegated to a [CredentialVerifier]; this type only
// owns the token lifecycle. Tokens are stateless and self-contained — there
// is no session store and no revocation list.
type authService struct {
	// verifier is the credential-lookup capability behind Login.
	verifier CredentialVerifier

	// idGenerator produces the unique "jti" claim of every issued token.
	idGenerator IDGenerator

	// tokenParams holds the signing key and trust parameters (issuer,
	// audience, lifetime, clock skew) shared by issuance and validation.
	tokenParams utils.TokenParams

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given credential
// verifier and populated with trust parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(verifier CredentialVerifier, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		verifier:    verifier,
		idGenerator: idGenerator,
		tokenParams: utils.TokenParams{
			Issuer:    cfg.TokenIssuer,
			Audience:  cfg.TokenAudience,
			Duration:  cfg.TokenDuration,
			ClockSkew: cfg.ClockSkew,
			SignKey:   cfg.TokenSignKey,
		},
		logger: logger,
	}
}

// Login authenticates the credential pair and issues a signed JWT.
//
// The token carries the principal's username as "sub", a freshly generated
// "jti", the principal's role, and the configured issuer, audience and
// expiry. Token issuance is pure computation; the only suspension point is
// the verifier itself.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials if the verifier rejects the pair.
//   - A wrapped ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	principal, err := a.verifier.Verify(ctx, username, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("credential verification failed")
		return models.Token{}, fmt.Errorf("credential verification failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(principal, a.idGenerator.Generate(), a.tokenParams)
	if err != nil {
		log.Err(err).Str("username", username).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Debug().Str("username", username).Str("jti", token.ID).Msg("token issued")

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// issuer, audience, and expiry (with the configured clock-skew leeway). Any
// validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenParams)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
