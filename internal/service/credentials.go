package service

import (
	"context"
	"crypto/subtle"

	"github.com/MKhiriev/customer-management/internal/config"
	"github.com/MKhiriev/customer-management/models"
	"golang.org/x/crypto/bcrypt"
)

// staticCredentialVerifier is the default [CredentialVerifier]: it recognises
// exactly one principal, configured at startup. When a bcrypt hash is
// configured it takes precedence over the plain secret; the plain secret is
// compared in constant time.
//
// This is a deliberate stand-in for a real credential store — swapping in one
// only requires another CredentialVerifier implementation.
type staticCredentialVerifier struct {
	login        string
	password     string
	passwordHash string
	role         string
}

// NewStaticCredentialVerifier constructs the config-backed verifier for the
// single admin principal.
func NewStaticCredentialVerifier(cfg config.App) CredentialVerifier {
	return &staticCredentialVerifier{
		login:        cfg.AdminLogin,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
		role:         models.AdminRole,
	}
}

// Verify checks the pair against the configured admin credential.
// Any mismatch — unknown username or wrong password — yields
// ErrInvalidCredentials without distinguishing which part failed.
func (v *staticCredentialVerifier) Verify(_ context.Context, username, password string) (models.Principal, error) {
	if username != v.login {
		return models.Principal{}, ErrInvalidCredentials
	}

	if v.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)); err != nil {
			return models.Principal{}, ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) != 1 {
		return models.Principal{}, ErrInvalidCredentials
	}

	return models.Principal{Username: v.login, Role: v.role}, nil
}
