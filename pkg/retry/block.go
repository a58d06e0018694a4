// Package retry provides block strategy implementations
package retry

import (
	"context"
	"time"

	"github.com/jzx17/goretry/pkg/types"
)

// BlockStrategy suspends execution for a computed duration before the
// next attempt. If the wait observes a cancellation of ctx it must return
// ctx.Err(); the engine propagates that immediately and unwrapped. A
// cancelled wait is never retried, never counted against the stop
// strategy, and never folded into a retries-exhausted failure.
type BlockStrategy interface {
	// Block waits for the given duration or until ctx is cancelled
	Block(ctx context.Context, d time.Duration) error
}

// sleepBlock waits on a clock timer, interruptibly
type sleepBlock struct {
	clock types.Clock
}

// NewSleepBlockStrategy returns the default block strategy: a timer-based
// wait on the given clock. A nil clock resolves from the call context at
// wait time, falling back to real time.
func NewSleepBlockStrategy(clock types.Clock) BlockStrategy {
	return &sleepBlock{clock: clock}
}

// Block waits for the given duration or until ctx is cancelled
func (b *sleepBlock) Block(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		// still observe a pending cancellation before the next attempt
		return ctx.Err()
	}

	clock := b.clock
	if clock == nil {
		clock = types.ClockFromContext(ctx)
	}

	timer := clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C():
		return nil
	}
}

// BlockFunc is an adapter that allows a function to be used as a BlockStrategy
type BlockFunc func(ctx context.Context, d time.Duration) error

// Block implements BlockStrategy
func (f BlockFunc) Block(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}
