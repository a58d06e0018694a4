package retry

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jzx17/goretry/pkg/types"
)

func TestRetriesExhaustedErrorWithFailure(t *testing.T) {
	cause := types.WithKind(errors.New("disk full"), types.NewFailureKind("storage", nil))
	exhausted := &RetriesExhaustedError{
		LastAttempt: newAttempt(3, 2*time.Second, nil, cause),
	}

	if !errors.Is(exhausted, cause) {
		t.Error("exhausted error must unwrap to the last failure cause")
	}
	if !strings.Contains(exhausted.Error(), "3 attempts") {
		t.Errorf("Error() = %q, want attempt count", exhausted.Error())
	}
	if !strings.Contains(exhausted.Error(), "disk full") {
		t.Errorf("Error() = %q, want cause message", exhausted.Error())
	}

	last, ok := IsRetriesExhausted(exhausted)
	if !ok || last.Number() != 3 {
		t.Errorf("IsRetriesExhausted() = (%v, %v), want last attempt 3", last, ok)
	}
}

func TestRetriesExhaustedErrorWithRejectedValue(t *testing.T) {
	exhausted := &RetriesExhaustedError{
		LastAttempt: newAttempt(2, time.Second, "unacceptable", nil),
	}

	if errors.Unwrap(exhausted) != nil {
		t.Error("value-rejected exhaustion has no cause to unwrap")
	}
	if !strings.Contains(exhausted.Error(), "rejected") {
		t.Errorf("Error() = %q, want rejected-result message", exhausted.Error())
	}
}

func TestIsRetriesExhaustedOnOtherErrors(t *testing.T) {
	if _, ok := IsRetriesExhausted(errors.New("boom")); ok {
		t.Error("plain error misclassified as retries exhausted")
	}
	if _, ok := IsRetriesExhausted(nil); ok {
		t.Error("nil error misclassified as retries exhausted")
	}
}
