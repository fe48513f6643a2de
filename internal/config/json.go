package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration to accept human-readable values ("1h", "30m")
// as well as raw nanosecond numbers in JSON configuration files.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration value")
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// human-readable durations. It exists so that the JSON file format can evolve
// independently of the env/flag representation.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenAudience     string   `json:"token_audience"`
		TokenDuration     Duration `json:"token_duration"`
		ClockSkew         Duration `json:"clock_skew"`
		AdminLogin        string   `json:"admin_login"`
		AdminPassword     string   `json:"admin_password"`
		AdminPasswordHash string   `json:"admin_password_hash"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		SQLite struct {
			Path string `json:"path"`
		} `json:"sqlite,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

// parseJSONFile reads the JSON configuration file at path and converts it to
// a *StructuredConfig suitable for merging with the other sources.
func parseJSONFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	return jsonCfg.toStructuredConfig(), nil
}

func (j *StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:      j.App.TokenSignKey,
			TokenIssuer:       j.App.TokenIssuer,
			TokenAudience:     j.App.TokenAudience,
			TokenDuration:     time.Duration(j.App.TokenDuration),
			ClockSkew:         time.Duration(j.App.ClockSkew),
			AdminLogin:        j.App.AdminLogin,
			AdminPassword:     j.App.AdminPassword,
			AdminPasswordHash: j.App.AdminPasswordHash,
		},
		Storage: Storage{
			DB: DB{
				DSN: j.Storage.DB.DSN,
			},
			SQLite: SQLite{
				Path: j.Storage.SQLite.Path,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
	}
}
