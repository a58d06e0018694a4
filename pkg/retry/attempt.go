// Package retry provides the attempt record consumed by retry policies
package retry

import (
	"time"

	"github.com/jzx17/goretry/pkg/types"
)

// Attempt is the immutable record of one operation invocation. It holds
// either a value or a failure, never both, plus the invocation's position
// in the retry sequence. Policies receive only Attempts, never the
// operation or engine internals.
type Attempt struct {
	number int
	delay  time.Duration
	value  any
	err    error
}

func newAttempt(number int, delay time.Duration, value any, err error) *Attempt {
	return &Attempt{
		number: number,
		delay:  delay,
		value:  value,
		err:    err,
	}
}

// Number returns the 1-indexed invocation number
func (a *Attempt) Number() int {
	return a.number
}

// DelaySinceFirstAttempt returns the elapsed wall-clock time since the
// first invocation began
func (a *Attempt) DelaySinceFirstAttempt() time.Duration {
	return a.delay
}

// HasValue reports whether the invocation produced a value
func (a *Attempt) HasValue() bool {
	return a.err == nil
}

// HasFailure reports whether the invocation failed
func (a *Attempt) HasFailure() bool {
	return a.err != nil
}

// Value returns the produced value, or nil if the invocation failed
func (a *Attempt) Value() any {
	if a.err != nil {
		return nil
	}
	return a.value
}

// Failure returns the failure cause, or nil if the invocation succeeded
func (a *Attempt) Failure() error {
	return a.err
}

// FailureKind classifies the failure cause, or returns nil for a
// value-bearing attempt
func (a *Attempt) FailureKind() *types.FailureKind {
	return types.KindOf(a.err)
}

// Get returns the invocation outcome as a (value, error) pair
func (a *Attempt) Get() (any, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.value, nil
}
