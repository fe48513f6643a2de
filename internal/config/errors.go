// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Sentinel errors returned by [StructuredConfig.validate] when the merged
// configuration is missing values the application cannot run without.
var (
	// ErrInvalidTokenConfigs is returned when the token signing key, issuer,
	// or audience is missing.
	ErrInvalidTokenConfigs = errors.New("token sign key, issuer and audience must be set")

	// ErrInvalidCredentialConfigs is returned when the admin login is missing
	// or neither a plain password nor a bcrypt hash is configured for it.
	ErrInvalidCredentialConfigs = errors.New("admin login and password (or password hash) must be set")

	// ErrInvalidStorageConfigs is returned when neither a PostgreSQL DSN nor
	// a SQLite file path is configured.
	ErrInvalidStorageConfigs = errors.New("either database DSN or sqlite path must be set")
)
