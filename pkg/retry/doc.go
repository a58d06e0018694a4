// Package retry provides a generic retry-execution engine: it repeatedly
// invokes an operation according to pluggable policies until the operation
// succeeds, a stop condition is met, or the calling context is cancelled.
//
// Key Features:
//
// 1. Retry predicates (combined with OR semantics):
//   - RetryIfFailure: retry on any failure
//   - RetryIfKind: retry on a failure kind or any of its descendants
//   - RetryIfFailureMatches: retry on a caller-supplied error match
//   - RetryIfResult: retry while the produced value is rejected
//
// 2. Stop strategies:
//   - NeverStop: retry forever
//   - StopAfterAttempts: stop after N total attempts
//   - StopAfterDelay: stop after a maximum elapsed time
//
// 3. Wait strategies:
//   - FixedWait: fixed delay
//   - IncrementingWait: linear growth
//   - ExponentialWait: geometric growth with a cap
//   - FibonacciWait: Fibonacci growth with a cap
//   - RandomWait: uniform random delay
//   - MaxOfWaits: composition by maximum
//   - WithJitter / FullJitter / EqualJitter: jitter decoration
//
// 4. Attempt time limiters:
//   - NoTimeLimit: transparent pass-through
//   - FixedTimeLimit: bounds a single invocation, abandoning slow ones
//
// 5. Retry engine:
//   - Synchronous and asynchronous entry points (Do, Run, DoAsync)
//   - Cooperative cancellation at both suspension points
//   - Attempt listeners and call statistics
//
// Basic usage example:
//
//	retryer := retry.NewRetryer(
//		retry.WithRetryIf(retry.RetryIfFailure()),
//		retry.WithStopStrategy(retry.StopAfterAttempts(5)),
//		retry.WithWaitStrategy(retry.ExponentialWait(100*time.Millisecond, 2.0, 10*time.Second)),
//	)
//
//	result, err := retry.Do(retryer, ctx, func(ctx context.Context) (string, error) {
//		return fetchSomething(ctx)
//	})
//
// Kind matching:
//
//	kindDatabase := types.NewFailureKind("database", nil)
//	kindDeadlock := types.NewFailureKind("deadlock", kindDatabase)
//
//	retryer := retry.NewRetryer(
//		retry.WithRetryIf(retry.RetryIfKind(kindDatabase)), // matches deadlock too
//		retry.WithStopStrategy(retry.StopAfterAttempts(3)),
//	)
//
// Per-attempt time limits:
//
//	retryer := retry.NewRetryer(
//		retry.WithRetryIf(retry.RetryIfKind(types.KindTimeout)),
//		retry.WithAttemptTimeLimiter(retry.FixedTimeLimit(2*time.Second)),
//		retry.WithStopStrategy(retry.StopAfterAttempts(4)),
//	)
//
// Failure semantics:
//
// Ordinary operation failures and per-attempt timeouts are resolved by the
// predicate/stop machinery; the caller only sees them if retrying was
// declined (original failure, unwrapped) or retries were exhausted
// (*RetriesExhaustedError carrying the last Attempt). Cancellation of the
// calling context is terminal: it surfaces immediately and unwrapped,
// whether it arrives during an invocation or during a backoff wait.
//
// Thread safety:
//
// A configured Retryer holds no per-call state and is safe for concurrent
// use; predicates and strategies must stay pure for the same reason.
package retry
