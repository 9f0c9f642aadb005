package retry

import (
	"context"
	"errors"
	"time"
)

// Config holds configuration for retry logic
type Config struct {
	MaxAttempts  int           `yaml:"max_attempts" validate:"min=1,max=10"`
	InitialDelay time.Duration `yaml:"initial_delay" validate:"min=0"`
	MaxDelay     time.Duration `yaml:"max_delay" validate:"min=0"`
	Multiplier   float64       `yaml:"multiplier" validate:"gte=1"`
}

// DefaultConfig returns a single-attempt configuration: failures surface
// immediately unless more attempts are configured.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  1,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
	}
}

// Permanent marks err as not retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Do executes fn with exponential backoff. It returns the number of attempts
// made and the last error, unwrapped from any Permanent marker.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) (int, error) {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return attempt, nil
		}
		lastErr = err

		var perm *permanentError
		if errors.As(err, &perm) {
			return attempt, perm.err
		}

		// Don't retry on context cancellation
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return attempt, err
		}

		// Last attempt, don't wait
		if attempt == cfg.MaxAttempts {
			return attempt, lastErr
		}

		select {
		case <-ctx.Done():
			return attempt, ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return cfg.MaxAttempts, lastErr
}
