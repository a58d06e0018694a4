// Package retry defines the engine's terminal error types
package retry

import (
	"errors"
	"fmt"

	"github.com/jzx17/goretry/pkg/types"
)

// RetriesExhaustedError is synthesized by the engine when the stop
// strategy fires. It carries the full last Attempt for diagnostics;
// Unwrap exposes the last failure cause for errors.Is/As matching.
type RetriesExhaustedError struct {
	// LastAttempt is the most recent attempt before the engine gave up
	LastAttempt *Attempt
}

// Error implements the error interface
func (e *RetriesExhaustedError) Error() string {
	if e.LastAttempt.HasFailure() {
		return fmt.Sprintf("retries exhausted after %d attempts, last failure: %v",
			e.LastAttempt.Number(), e.LastAttempt.Failure())
	}
	return fmt.Sprintf("retries exhausted after %d attempts, last result rejected: %v",
		e.LastAttempt.Number(), e.LastAttempt.Value())
}

// Unwrap returns the last failure cause, or nil if the last attempt held
// an unacceptable value rather than a failure
func (e *RetriesExhaustedError) Unwrap() error {
	return e.LastAttempt.Failure()
}

// FailureKind classifies the last failure cause
func (e *RetriesExhaustedError) FailureKind() *types.FailureKind {
	return e.LastAttempt.FailureKind()
}

// IsRetriesExhausted reports whether err is a retries-exhausted failure
// and, if so, returns the last attempt
func IsRetriesExhausted(err error) (*Attempt, bool) {
	var exhausted *RetriesExhaustedError
	if errors.As(err, &exhausted) {
		return exhausted.LastAttempt, true
	}
	return nil, false
}
