// Package logging builds the zap loggers used across voxscribe.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with appropriate configuration
func NewLogger(development bool) (*zap.Logger, error) {
	var config zap.Config

	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "time"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	return config.Build(zap.Fields(zap.String("service", "voxscribe")))
}

// MustNewLogger creates a new logger and panics if it fails
func MustNewLogger(development bool) *zap.Logger {
	logger, err := NewLogger(development)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}

// ForEnvironment picks the development encoder for any environment other
// than "production".
func ForEnvironment(env string) (*zap.Logger, error) {
	return NewLogger(env != "production")
}

// WithLevel drops entries below level. An empty level returns logger as is.
func WithLevel(logger *zap.Logger, level string) (*zap.Logger, error) {
	if level == "" {
		return logger, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logger.WithOptions(zap.IncreaseLevel(lvl)), nil
}
