// Package retry provides stop strategy implementations
package retry

import (
	"fmt"
	"time"
)

// StopStrategy decides, given a failed Attempt, whether to give up
// entirely. It is evaluated only after a predicate has already decided a
// retry would otherwise be warranted. Implementations must be stateless
// and safe for reuse across concurrent calls.
type StopStrategy interface {
	// ShouldStop reports whether the engine should abandon further retries
	ShouldStop(attempt *Attempt) bool
}

type neverStop struct{}

func (neverStop) ShouldStop(*Attempt) bool {
	return false
}

// NeverStop returns a stop strategy that never gives up
func NeverStop() StopStrategy {
	return neverStop{}
}

type stopAfterAttempts struct {
	maxAttempts int
}

func (s stopAfterAttempts) ShouldStop(attempt *Attempt) bool {
	return attempt.Number() >= s.maxAttempts
}

// StopAfterAttempts returns a stop strategy that gives up once n total
// attempts have been made. n=1 allows only the first attempt, no retries.
// Panics if n < 1.
func StopAfterAttempts(n int) StopStrategy {
	if n < 1 {
		panic(fmt.Sprintf("retry: StopAfterAttempts requires n >= 1, got %d", n))
	}
	return stopAfterAttempts{maxAttempts: n}
}

type stopAfterDelay struct {
	maxDelay time.Duration
}

func (s stopAfterDelay) ShouldStop(attempt *Attempt) bool {
	return attempt.DelaySinceFirstAttempt() >= s.maxDelay
}

// StopAfterDelay returns a stop strategy that gives up once the elapsed
// time since the first attempt reaches d. Panics if d < 0.
func StopAfterDelay(d time.Duration) StopStrategy {
	if d < 0 {
		panic(fmt.Sprintf("retry: StopAfterDelay requires d >= 0, got %v", d))
	}
	return stopAfterDelay{maxDelay: d}
}
