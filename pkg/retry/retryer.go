// Package retry provides the retry execution engine
package retry

import (
	"context"
	"sync"
	"time"

	"github.com/jzx17/goretry/pkg/types"
)

// Operation is the unit of work the engine retries. It produces a value
// or fails; the engine never inspects the value beyond handing it to the
// configured predicates.
type Operation func(ctx context.Context) (any, error)

// Retryer orchestrates the attempt loop: it invokes an operation through
// the attempt time limiter, records each outcome as an Attempt, and feeds
// that Attempt to the retry predicate, stop strategy and wait strategy
// until a terminal outcome is reached. A configured Retryer holds no
// per-call state and is safe to reuse across concurrent calls.
type Retryer struct {
	predicates []Predicate
	predicate  Predicate
	stop       StopStrategy
	wait       WaitStrategy
	block      BlockStrategy
	limiter    AttemptTimeLimiter
	clock      types.Clock
	listeners  []Listener
	stats      CallStats
}

// CallStats contains aggregate counters across calls to a Retryer
type CallStats struct {
	TotalCalls      int64         // calls to the engine entry points
	TotalAttempts   int64         // operation invocations across all calls
	TotalSuccesses  int64         // calls that returned a value
	TotalFailures   int64         // calls that returned an error
	TotalWaitTime   time.Duration // cumulative backoff wait
	LastAttemptTime time.Time     // time of the most recent invocation
	mu              sync.RWMutex
}

// Option is a configuration option for a Retryer
type Option func(*Retryer)

// WithRetryIf adds retry predicates. Multiple predicates combine with OR
// semantics: the engine retries if any of them says so.
func WithRetryIf(predicates ...Predicate) Option {
	return func(r *Retryer) {
		r.predicates = append(r.predicates, predicates...)
	}
}

// WithStopStrategy sets the stop strategy (default: never stop)
func WithStopStrategy(stop StopStrategy) Option {
	return func(r *Retryer) {
		r.stop = stop
	}
}

// WithWaitStrategy sets the wait strategy (default: no wait)
func WithWaitStrategy(wait WaitStrategy) Option {
	return func(r *Retryer) {
		r.wait = wait
	}
}

// WithBlockStrategy sets the block strategy (default: timer sleep)
func WithBlockStrategy(block BlockStrategy) Option {
	return func(r *Retryer) {
		r.block = block
	}
}

// WithAttemptTimeLimiter sets the per-attempt time limiter (default: none)
func WithAttemptTimeLimiter(limiter AttemptTimeLimiter) Option {
	return func(r *Retryer) {
		r.limiter = limiter
	}
}

// WithClock pins the clock for time operations. Without it the engine
// resolves the clock from the call context via types.ClockFromContext,
// falling back to real time.
func WithClock(clock types.Clock) Option {
	return func(r *Retryer) {
		r.clock = clock
	}
}

// WithListener adds an attempt listener
func WithListener(listeners ...Listener) Option {
	return func(r *Retryer) {
		r.listeners = append(r.listeners, listeners...)
	}
}

// NewRetryer creates a Retryer. Without options the first attempt is
// final: never retry, never stop, no wait, no time limit.
func NewRetryer(opts ...Option) *Retryer {
	r := &Retryer{
		stop: NeverStop(),
		wait: NoWait(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if len(r.predicates) == 0 {
		r.predicate = NeverRetry()
	} else {
		r.predicate = AnyOf(r.predicates...)
	}
	if r.block == nil {
		r.block = NewSleepBlockStrategy(r.clock)
	}
	if r.limiter == nil {
		r.limiter = NoTimeLimit()
	}

	return r
}

// clockFor resolves the clock for one call: a clock pinned with WithClock
// wins, otherwise the call context supplies one (real time by default).
func (r *Retryer) clockFor(ctx context.Context) types.Clock {
	if r.clock != nil {
		return r.clock
	}
	return types.ClockFromContext(ctx)
}

// Call runs op through the attempt loop and returns its terminal outcome:
// the produced value on success, the operation's own failure unwrapped
// when no retry is warranted, a *RetriesExhaustedError when the stop
// strategy fires, or the cancellation signal unwrapped when ctx is
// cancelled during an attempt or a wait.
func (r *Retryer) Call(ctx context.Context, op Operation) (any, error) {
	r.updateStats(func(s *CallStats) {
		s.TotalCalls++
	})

	clock := r.clockFor(ctx)
	start := clock.Now()

	for number := 1; ; number++ {
		r.updateStats(func(s *CallStats) {
			s.TotalAttempts++
			s.LastAttemptTime = clock.Now()
		})

		value, err := r.limiter.Call(ctx, op)

		// Cancellation wins immediately: it is never offered to the
		// predicate, never counted by the stop strategy, never wrapped.
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return r.failed(cerr)
			}
			if types.IsCancellation(err) {
				return r.failed(err)
			}
		}

		attempt := newAttempt(number, clock.Since(start), value, err)

		for _, l := range r.listeners {
			l.OnAttempt(ctx, attempt)
		}

		if !r.predicate(attempt) {
			// not retrying does not mean wrapping: surface the value or
			// the original failure as-is
			if attempt.HasFailure() {
				return r.failed(attempt.Failure())
			}
			r.updateStats(func(s *CallStats) {
				s.TotalSuccesses++
			})
			return attempt.Value(), nil
		}

		if r.stop.ShouldStop(attempt) {
			return r.failed(&RetriesExhaustedError{LastAttempt: attempt})
		}

		delay := r.wait.ComputeDelay(attempt)
		r.updateStats(func(s *CallStats) {
			s.TotalWaitTime += delay
		})

		if berr := r.block.Block(ctx, delay); berr != nil {
			return r.failed(berr)
		}
	}
}

// failed records a terminal failure and returns it
func (r *Retryer) failed(err error) (any, error) {
	r.updateStats(func(s *CallStats) {
		s.TotalFailures++
	})
	return nil, err
}

// Do runs fn through the attempt loop with a typed result
func Do[T any](r *Retryer, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	value, err := r.Call(ctx, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	result, _ := value.(T)
	return result, nil
}

// Run runs a value-less fn through the attempt loop
func Run(r *Retryer, ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := r.Call(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	})
	return err
}

// DoAsync runs fn through the attempt loop asynchronously
func DoAsync[T any](r *Retryer, ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan types.Result[T] {
	resultChan := make(chan types.Result[T], 1)

	go func() {
		defer close(resultChan)

		clock := r.clockFor(ctx)
		start := clock.Now()
		value, err := Do(r, ctx, fn)
		duration := clock.Since(start)

		resultChan <- types.Result[T]{
			Value:    value,
			Error:    err,
			Duration: duration,
		}
	}()

	return resultChan
}

// Stats returns a copy of the aggregate counters
func (r *Retryer) Stats() CallStats {
	r.stats.mu.RLock()
	defer r.stats.mu.RUnlock()
	return CallStats{
		TotalCalls:      r.stats.TotalCalls,
		TotalAttempts:   r.stats.TotalAttempts,
		TotalSuccesses:  r.stats.TotalSuccesses,
		TotalFailures:   r.stats.TotalFailures,
		TotalWaitTime:   r.stats.TotalWaitTime,
		LastAttemptTime: r.stats.LastAttemptTime,
		// don't copy mutex
	}
}

// ResetStats resets the aggregate counters
func (r *Retryer) ResetStats() {
	r.stats.mu.Lock()
	defer r.stats.mu.Unlock()

	r.stats.TotalCalls = 0
	r.stats.TotalAttempts = 0
	r.stats.TotalSuccesses = 0
	r.stats.TotalFailures = 0
	r.stats.TotalWaitTime = 0
	r.stats.LastAttemptTime = time.Time{}
}

// updateStats updates counters (thread-safe)
func (r *Retryer) updateStats(fn func(*CallStats)) {
	r.stats.mu.Lock()
	defer r.stats.mu.Unlock()
	fn(&r.stats)
}
