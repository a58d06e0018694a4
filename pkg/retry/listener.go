// Package retry provides attempt listeners for observing the retry loop
package retry

import (
	"context"
)

// Listener observes every Attempt the engine produces, whether or not the
// attempt leads to a retry. Listeners must not mutate the Attempt.
type Listener interface {
	// OnAttempt is called after each operation invocation completes
	OnAttempt(ctx context.Context, attempt *Attempt)
}

// ListenerFunc is an adapter that allows a function to be used as a Listener
type ListenerFunc func(ctx context.Context, attempt *Attempt)

// OnAttempt implements Listener
func (f ListenerFunc) OnAttempt(ctx context.Context, attempt *Attempt) {
	f(ctx, attempt)
}

// Logger interface for logging
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// LoggingListener logs every attempt through a Logger
type LoggingListener struct {
	logger Logger
}

// NewLoggingListener creates a listener that logs attempt outcomes
func NewLoggingListener(logger Logger) *LoggingListener {
	return &LoggingListener{logger: logger}
}

// OnAttempt logs the attempt outcome
func (l *LoggingListener) OnAttempt(ctx context.Context, attempt *Attempt) {
	if l.logger == nil {
		return
	}
	if attempt.HasValue() {
		l.logger.Debugf("attempt %d succeeded after %v",
			attempt.Number(), attempt.DelaySinceFirstAttempt())
		return
	}
	l.logger.Warnf("attempt %d failed (%s) after %v: %v",
		attempt.Number(), attempt.FailureKind(), attempt.DelaySinceFirstAttempt(),
		attempt.Failure())
}
