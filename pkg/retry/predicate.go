// Package retry provides retry predicate implementations
package retry

import (
	"github.com/jzx17/goretry/pkg/types"
)

// Predicate decides, given an Attempt, whether the engine should try
// again. Predicates must be pure: safe for reuse across concurrent calls.
// A predicate is never consulted for a cancellation failure; the loop
// short-circuits before evaluation.
type Predicate func(*Attempt) bool

// NeverRetry is the default predicate when none is configured: the first
// attempt is final.
func NeverRetry() Predicate {
	return func(*Attempt) bool {
		return false
	}
}

// RetryIfFailure retries on any failed attempt
func RetryIfFailure() Predicate {
	return func(attempt *Attempt) bool {
		return attempt.HasFailure()
	}
}

// RetryIfKind retries when the failure kind is the given kind or one of
// its descendants
func RetryIfKind(kind *types.FailureKind) Predicate {
	return func(attempt *Attempt) bool {
		if !attempt.HasFailure() {
			return false
		}
		return attempt.FailureKind().IsA(kind)
	}
}

// RetryIfFailureMatches retries when the failure cause satisfies match
func RetryIfFailureMatches(match func(error) bool) Predicate {
	return func(attempt *Attempt) bool {
		if !attempt.HasFailure() {
			return false
		}
		return match(attempt.Failure())
	}
}

// RetryIfResult retries while the produced value fails the caller-supplied
// acceptance check, i.e. while reject returns true
func RetryIfResult(reject func(any) bool) Predicate {
	return func(attempt *Attempt) bool {
		if !attempt.HasValue() {
			return false
		}
		return reject(attempt.Value())
	}
}

// AnyOf composes predicates with OR semantics: retry if any configured
// predicate says so. An empty list never retries.
func AnyOf(predicates ...Predicate) Predicate {
	if len(predicates) == 1 {
		return predicates[0]
	}
	return func(attempt *Attempt) bool {
		for _, p := range predicates {
			if p(attempt) {
				return true
			}
		}
		return false
	}
}
