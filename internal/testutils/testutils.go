// Package testutils provides simplified testing utilities and helper functions
package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestContext bundles a testing.T with a bounded context for loop tests
type TestContext struct {
	t       *testing.T
	timeout time.Duration
}

// NewTestContext creates new test context
func NewTestContext(t *testing.T, timeout time.Duration) *TestContext {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TestContext{t: t, timeout: timeout}
}

// Context returns context with timeout, cancelled automatically at test end
func (tc *TestContext) Context() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), tc.timeout)
	tc.t.Cleanup(cancel)
	return ctx
}

// RequireNoError asserts no error
func (tc *TestContext) RequireNoError(err error, msgAndArgs ...interface{}) {
	if !assert.NoError(tc.t, err, msgAndArgs...) {
		tc.t.FailNow()
	}
}
