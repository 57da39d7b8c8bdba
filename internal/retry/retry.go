// Package retry provides a bounded fixed-interval retry combinator.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrExhausted is returned (wrapped) when every attempt has failed.
var ErrExhausted = errors.New("retry attempts exhausted")

// Policy controls how Do retries.
type Policy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int
	// Interval is the fixed wait between tries.
	Interval time.Duration
}

// DefaultPolicy matches the agent bootstrap behavior: five tries one
// second apart.
func DefaultPolicy() Policy {
	return Policy{Attempts: 5, Interval: time.Second}
}

// Do runs fn until it succeeds, the policy is exhausted, or ctx is done.
// Exhaustion is reported as an error wrapping both ErrExhausted and the
// last failure, so callers decide the fatal-exit question themselves.
func Do(ctx context.Context, p Policy, logger *slog.Logger, operation string, fn func(ctx context.Context) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	if p.Attempts < 1 {
		p.Attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.Interval):
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		logger.Warn("operation failed",
			"operation", operation,
			"attempt", attempt,
			"attempts", p.Attempts,
			"error", lastErr,
		)
	}

	return fmt.Errorf("%s: %w after %d attempts: %w", operation, ErrExhausted, p.Attempts, lastErr)
}
