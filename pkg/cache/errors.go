package cache

import (
	"context"
	"errors"
	"time"
)

// ErrBackend tags a backend failure (timeout, connection loss) so callers
// can tell infrastructure trouble apart from a plain miss, which the
// Cache contract reports through its bool instead of an error.
var ErrBackend = errors.New("backend error")

// RetryableError marks an error as transient. RetryWithBackoff retries
// only errors carrying this marker; everything else fails immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err carries the RetryableError marker
// anywhere in its chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn, retrying transient failures up to three
// attempts total with doubling delays starting at one second. Context
// cancellation cuts the wait short.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3

	var lastErr error
	delay := time.Second
	for attempt := 1; ; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) || attempt == attempts {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}
