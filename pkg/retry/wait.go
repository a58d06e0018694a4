// Package retry provides wait strategy implementations
package retry

import (
	"math"
	"math/rand"
	"time"
)

// WaitStrategy computes the delay before the next attempt. The delay must
// be derivable purely from the most recent failed Attempt (number and
// elapsed delay) with no external state, so strategies stay deterministic
// under test and safe for reuse across concurrent calls. A strategy may
// return 0 to mean "retry immediately"; results are never negative.
type WaitStrategy interface {
	// ComputeDelay calculates the wait before the next attempt
	ComputeDelay(attempt *Attempt) time.Duration
}

// WaitFunc is an adapter that allows a function to be used as a WaitStrategy
type WaitFunc func(attempt *Attempt) time.Duration

// ComputeDelay implements WaitStrategy
func (f WaitFunc) ComputeDelay(attempt *Attempt) time.Duration {
	return f(attempt)
}

// NoWait returns a strategy that retries immediately
func NoWait() WaitStrategy {
	return FixedWait(0)
}

// FixedWait returns a strategy that always waits the same duration
func FixedWait(d time.Duration) WaitStrategy {
	return WaitFunc(func(*Attempt) time.Duration {
		return d
	})
}

// IncrementingWait returns a strategy whose delay grows by a fixed
// increment with each attempt: initial + (attempt-1)*increment
func IncrementingWait(initial, increment time.Duration) WaitStrategy {
	return WaitFunc(func(attempt *Attempt) time.Duration {
		delay := initial + time.Duration(attempt.Number()-1)*increment
		if delay < 0 {
			return 0
		}
		return delay
	})
}

// ExponentialWait returns a strategy whose delay grows geometrically:
// base * multiplier^(attempt-1), capped at maxDelay
func ExponentialWait(base time.Duration, multiplier float64, maxDelay time.Duration) WaitStrategy {
	return WaitFunc(func(attempt *Attempt) time.Duration {
		delay := time.Duration(float64(base) * math.Pow(multiplier, float64(attempt.Number()-1)))
		if delay > maxDelay || delay < 0 {
			delay = maxDelay
		}
		return delay
	})
}

// FibonacciWait returns a strategy whose delay is base * fib(attempt),
// capped at maxDelay
func FibonacciWait(base, maxDelay time.Duration) WaitStrategy {
	return WaitFunc(func(attempt *Attempt) time.Duration {
		delay := time.Duration(fibonacci(attempt.Number())) * base
		if delay > maxDelay || delay < 0 {
			delay = maxDelay
		}
		return delay
	})
}

// fibonacci computes the nth Fibonacci number iteratively. No cache is
// kept: strategies must be reusable by concurrent calls.
func fibonacci(n int) int64 {
	prev, cur := int64(0), int64(1)
	for i := 1; i < n; i++ {
		next := prev + cur
		// prevent overflow
		if next < cur {
			return math.MaxInt32
		}
		prev, cur = cur, next
	}
	return cur
}

// RandomWait returns a strategy that waits a uniformly random duration in
// [min, max)
func RandomWait(min, max time.Duration) WaitStrategy {
	return WaitFunc(func(*Attempt) time.Duration {
		if max <= min {
			return min
		}
		return min + time.Duration(rand.Int63n(int64(max-min)))
	})
}

// MaxOfWaits composes strategies by taking the maximum of their computed
// delays. An empty list waits 0.
func MaxOfWaits(strategies ...WaitStrategy) WaitStrategy {
	return WaitFunc(func(attempt *Attempt) time.Duration {
		var max time.Duration
		for _, s := range strategies {
			if d := s.ComputeDelay(attempt); d > max {
				max = d
			}
		}
		return max
	})
}

// JitterFunc jitter function type
type JitterFunc func(time.Duration) time.Duration

// FullJitter full jitter function - random within [0, delay) range
func FullJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(delay)))
}

// EqualJitter equal jitter function - delay/2 + random(0, delay/2)
func EqualJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}
	half := delay / 2
	if half <= 0 {
		return delay
	}
	return half + time.Duration(rand.Int63n(int64(half)))
}

// WithJitter wraps a strategy and perturbs its delay with the given jitter
// function
func WithJitter(strategy WaitStrategy, jitter JitterFunc) WaitStrategy {
	return WaitFunc(func(attempt *Attempt) time.Duration {
		delay := jitter(strategy.ComputeDelay(attempt))
		if delay < 0 {
			return 0
		}
		return delay
	})
}
