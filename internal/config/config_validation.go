// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultClockSkew is the leeway applied to token expiry validation when no
// explicit value is configured.
const defaultClockSkew = 2 * time.Minute

// applyDefaults fills in values the application can choose sensibly on its
// own. Only fields left at their zero value are touched.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.ClockSkew == 0 {
		cfg.App.ClockSkew = defaultClockSkew
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = time.Hour
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenAudience == "" {
		return ErrInvalidTokenConfigs
	}

	if cfg.App.AdminLogin == "" || (cfg.App.AdminPassword == "" && cfg.App.AdminPasswordHash == "") {
		return ErrInvalidCredentialConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.SQLite.Path == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
