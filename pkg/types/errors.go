// Package types defines error types
package types

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TimeoutError is raised by an attempt time limiter when a single
// invocation exceeds its time budget. It is a retryable failure kind like
// any other; predicates may match it via KindTimeout.
type TimeoutError struct {
	// Limit is the per-attempt budget that was exceeded
	Limit time.Duration
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("attempt exceeded time limit of %v", e.Limit)
}

// FailureKind marks the error as a timeout
func (e *TimeoutError) FailureKind() *FailureKind {
	return KindTimeout
}

// Timeout reports true so net-style checks recognize the error
func (e *TimeoutError) Timeout() bool {
	return true
}

// KindedError attaches an explicit failure kind to an underlying error
type KindedError struct {
	// Err is the underlying error
	Err error

	// Kind is the declared failure kind
	Kind *FailureKind
}

// Error implements the error interface
func (e *KindedError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *KindedError) Unwrap() error {
	return e.Err
}

// FailureKind returns the declared kind
func (e *KindedError) FailureKind() *FailureKind {
	return e.Kind
}

// WithKind wraps err with an explicit failure kind for predicate matching.
// A nil err returns nil.
func WithKind(err error, kind *FailureKind) error {
	if err == nil {
		return nil
	}
	return &KindedError{Err: err, Kind: kind}
}

// IsCancellation reports whether an error carries a cancellation signal.
// Cancellation is never retried and never wrapped by the retry engine.
func IsCancellation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return KindOf(err).IsA(KindCancelled)
}

// IsTimeout reports whether an error was raised by an attempt time limiter
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}
