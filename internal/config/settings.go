// Package config loads voxscribe settings from YAML, .env files and
// VOXSCRIBE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"voxscribe/internal/app/dashboard"
	apperrors "voxscribe/internal/app/errors"
	"voxscribe/internal/app/history"
	"voxscribe/internal/app/intake"
)

// DefaultFile is read when no settings path is given.
const DefaultFile = "voxscribe.yaml"

// Settings is the complete runtime configuration.
type Settings struct {
	Server  ServerSettings    `yaml:"server"`
	Intake  IntakeSettings    `yaml:"intake"`
	History HistorySettings   `yaml:"history"`
	Usage   dashboard.Account `yaml:"usage"`
	// LogLevel raises the minimum log level; empty keeps the environment default.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Host         string        `yaml:"host" validate:"required"`
	Port         int           `yaml:"port" validate:"min=1,max=65535"`
	Environment  string        `yaml:"environment" validate:"oneof=development production test"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" validate:"gt=0"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// Addr returns host:port.
func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s ServerSettings) IsProduction() bool {
	return s.Environment == "production"
}

// IntakeSettings configures the intake pipeline and its simulated backend.
type IntakeSettings struct {
	intake.Config   `yaml:",inline"`
	ProcessingDelay time.Duration `yaml:"processing_delay" validate:"min=0"`
}

// HistorySettings selects where the history list comes from: the built-in
// demo entries, a YAML seed file, or a read-only SQL table.
type HistorySettings struct {
	PageSize int    `yaml:"page_size" validate:"min=1,max=100"`
	SeedFile string `yaml:"seed_file"`
	Driver   string `yaml:"driver" validate:"omitempty,oneof=sqlite3 postgres"`
	DSN      string `yaml:"dsn" validate:"required_with=Driver"`
	Table    string `yaml:"table"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Server: ServerSettings{
			Host:         "0.0.0.0",
			Port:         8080,
			Environment:  "development",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		Intake: IntakeSettings{
			Config:          intake.DefaultConfig(),
			ProcessingDelay: 3 * time.Second,
		},
		History: HistorySettings{
			PageSize: history.DefaultPageSize,
		},
		Usage: dashboard.DefaultAccount(),
	}
}

// Load reads settings from path over the defaults, applies environment
// overrides and validates the result. An empty path reads DefaultFile and
// tolerates its absence; an explicit path must exist.
func Load(path string) (*Settings, error) {
	settings := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &settings); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyEnv(&settings); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
	}
	if err := Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save writes settings to path as YAML.
func Save(s *Settings, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	if err := os.WriteFile(os.ExpandEnv(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
