package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override the settings file.
const (
	EnvConfigFile      = "VOXSCRIBE_CONFIG"
	EnvHost            = "VOXSCRIBE_HOST"
	EnvPort            = "VOXSCRIBE_PORT"
	EnvEnvironment     = "VOXSCRIBE_ENV"
	EnvProcessingDelay = "VOXSCRIBE_PROCESSING_DELAY"
	EnvHistorySeed     = "VOXSCRIBE_HISTORY_SEED"
	EnvHistoryDriver   = "VOXSCRIBE_HISTORY_DRIVER"
	EnvHistoryDSN      = "VOXSCRIBE_HISTORY_DSN"
	EnvLogLevel        = "VOXSCRIBE_LOG_LEVEL"
)

// envPaths are searched in order; the first existing file wins.
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file found.
// Variables already set in the process environment take precedence. It
// returns the path that was loaded, or "" when none exists.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// applyEnv overlays VOXSCRIBE_* variables onto s.
func applyEnv(s *Settings) error {
	if v := os.Getenv(EnvHost); v != "" {
		s.Server.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		s.Server.Port = port
	}
	if v := os.Getenv(EnvEnvironment); v != "" {
		s.Server.Environment = v
	}
	if v := os.Getenv(EnvProcessingDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvProcessingDelay, v, err)
		}
		s.Intake.ProcessingDelay = d
	}
	if v := os.Getenv(EnvHistorySeed); v != "" {
		s.History.SeedFile = v
	}
	if v := os.Getenv(EnvHistoryDriver); v != "" {
		s.History.Driver = v
	}
	if v := os.Getenv(EnvHistoryDSN); v != "" {
		s.History.DSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	return nil
}
