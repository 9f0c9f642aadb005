// Package cli holds the flags and setup shared by voxscribe subcommands.
package cli

import (
	"context"
	"fmt"
	"os"

	"voxscribe/internal/app"
	"voxscribe/internal/config"
)

var (
	// ConfigPath is bound to the --config flag.
	ConfigPath string
	// Verbose keeps info logs on for one-shot commands.
	Verbose bool
)

// LoadSettings reads .env, then the settings file. --config wins over
// VOXSCRIBE_CONFIG.
func LoadSettings() (*config.Settings, error) {
	if _, err := config.LoadEnv(); err != nil {
		return nil, err
	}
	path := ConfigPath
	if path == "" {
		path = os.Getenv(config.EnvConfigFile)
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// LoadApp builds the application for a one-shot command. Info logs are
// suppressed unless --verbose is set or a level is configured.
func LoadApp(ctx context.Context) (*app.App, func(), error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	if !Verbose && settings.LogLevel == "" {
		settings.LogLevel = "warn"
	}
	return app.InitializeApp(ctx, settings)
}
