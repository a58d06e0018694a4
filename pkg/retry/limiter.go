// Package retry provides attempt time limiter implementations
package retry

import (
	"context"
	"time"

	"github.com/jzx17/goretry/pkg/types"
)

// AttemptTimeLimiter bounds how long a single invocation of the operation
// may run. Implementations distinguish three outcomes: the operation's own
// result or failure, a *types.TimeoutError when the budget elapses first,
// and ctx.Err() when the caller's context is cancelled while the
// invocation is outstanding.
type AttemptTimeLimiter interface {
	// Call invokes op, enforcing the limiter's time budget
	Call(ctx context.Context, op Operation) (any, error)
}

type noTimeLimit struct{}

func (noTimeLimit) Call(ctx context.Context, op Operation) (any, error) {
	return op(ctx)
}

// NoTimeLimit returns the identity limiter: it delegates directly with no
// wrapping and no extra concurrency overhead.
func NoTimeLimit() AttemptTimeLimiter {
	return noTimeLimit{}
}

type fixedTimeLimit struct {
	limit time.Duration
	clock types.Clock
}

// FixedTimeLimit returns a limiter that abandons any invocation running
// longer than limit and reports it as a *types.TimeoutError.
func FixedTimeLimit(limit time.Duration) AttemptTimeLimiter {
	return FixedTimeLimitWithClock(limit, types.NewRealClock())
}

// FixedTimeLimitWithClock returns a fixed time limiter driven by a custom
// clock
func FixedTimeLimitWithClock(limit time.Duration, clock types.Clock) AttemptTimeLimiter {
	if clock == nil {
		clock = types.NewRealClock()
	}
	return &fixedTimeLimit{limit: limit, clock: clock}
}

type opOutcome struct {
	value any
	err   error
}

// Call runs op on its own goroutine and races it against the time budget
// and the caller's context. Once the budget fires the invocation is
// abandoned: its context is cancelled and a late result is discarded, never
// returned to the caller. An abandoned operation that ignores its context
// may keep running in the background until it completes on its own.
func (l *fixedTimeLimit) Call(ctx context.Context, op Operation) (any, error) {
	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// buffered so an abandoned invocation never blocks on delivery
	outcome := make(chan opOutcome, 1)
	go func() {
		value, err := op(attemptCtx)
		outcome <- opOutcome{value: value, err: err}
	}()

	timer := l.clock.NewTimer(l.limit)
	defer timer.Stop()

	select {
	case out := <-outcome:
		return out.value, out.err
	case <-timer.C():
		return nil, &types.TimeoutError{Limit: l.limit}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
