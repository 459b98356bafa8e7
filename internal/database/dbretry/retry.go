// Package dbretry wraps database operations with retry logic for
// transient connection-level failures.
package dbretry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/uptrace/bun/driver/pgdriver"
)

var (
	maxElapsedTime  = 30 * time.Second
	initialInterval = 500 * time.Millisecond
	maxInterval     = 5 * time.Second
	maxRetries      = uint64(5)
)

// IsRetryableError checks if the given error is retryable.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Check for specific PostgreSQL error codes
	var pgerr *pgdriver.Error
	if errors.As(err, &pgerr) {
		switch pgerr.Field('C') {
		case "08000", // connection_exception
			"08003", // connection_does_not_exist
			"08006", // connection_failure
			"08001", // sqlclient_unable_to_establish_sqlconnection
			"08004", // sqlserver_rejected_establishment_of_sqlconnection
			"08007", // transaction_resolution_unknown
			"40001", // serialization_failure
			"40P01", // deadlock_detected
			"53300", // too_many_connections
			"57P01", // admin_shutdown
			"57P03", // cannot_connect_now
			"55P03": // lock_not_available
			return true
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// Check for common network error strings
	errMsg := err.Error()
	if strings.Contains(errMsg, "connection reset by peer") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "i/o timeout") ||
		strings.Contains(errMsg, "EOF") {
		return true
	}

	return false
}

// Operation wraps a database operation with retry logic.
func Operation[T any](ctx context.Context, operation func(context.Context) (T, error)) (T, error) {
	var result T

	var lastErr error

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(maxElapsedTime),
		backoff.WithInitialInterval(initialInterval),
		backoff.WithMaxInterval(maxInterval),
	), maxRetries)

	err := backoff.Retry(func() error {
		var err error

		result, err = operation(ctx)
		if err != nil {
			if !IsRetryableError(err) {
				// Non-retryable errors are wrapped to stop retrying
				return backoff.Permanent(err)
			}

			lastErr = err

			return err
		}

		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		if lastErr != nil {
			// Return the last actual database error instead of the retry error
			return result, fmt.Errorf("database operation failed after retries: %w", lastErr)
		}

		return result, fmt.Errorf("database operation failed: %w", err)
	}

	return result, nil
}

// NoResult wraps a database operation that doesn't return a result.
func NoResult(ctx context.Context, operation func(context.Context) error) error {
	_, err := Operation(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, operation(ctx)
	})

	return err
}
