package retry

import (
	"errors"
	"testing"
	"time"
)

func attemptAt(number int, delay time.Duration) *Attempt {
	return newAttempt(number, delay, nil, errors.New("boom"))
}

func TestNeverStop(t *testing.T) {
	stop := NeverStop()

	for _, number := range []int{1, 2, 100, 1 << 20} {
		if stop.ShouldStop(attemptAt(number, time.Hour)) {
			t.Errorf("NeverStop stopped at attempt %d", number)
		}
	}
}

func TestStopAfterAttempts(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		attempt int
		want    bool
	}{
		{"below limit", 3, 2, false},
		{"at limit", 3, 3, true},
		{"above limit", 3, 4, true},
		{"single attempt allowed", 1, 1, true},
		{"first of many", 10, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop := StopAfterAttempts(tt.max)
			if got := stop.ShouldStop(attemptAt(tt.attempt, 0)); got != tt.want {
				t.Errorf("ShouldStop(attempt %d, max %d) = %v, want %v", tt.attempt, tt.max, got, tt.want)
			}
		})
	}
}

func TestStopAfterAttemptsPanicsBelowOne(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for n < 1")
		}
	}()
	StopAfterAttempts(0)
}

func TestStopAfterDelay(t *testing.T) {
	tests := []struct {
		name  string
		max   time.Duration
		delay time.Duration
		want  bool
	}{
		{"below limit", time.Second, 500 * time.Millisecond, false},
		{"boundary counts as stop", time.Second, time.Second, true},
		{"above limit", time.Second, 2 * time.Second, true},
		{"zero delay stops immediately", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop := StopAfterDelay(tt.max)
			if got := stop.ShouldStop(attemptAt(1, tt.delay)); got != tt.want {
				t.Errorf("ShouldStop(delay %v, max %v) = %v, want %v", tt.delay, tt.max, got, tt.want)
			}
		})
	}
}

func TestStopAfterDelayPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for d < 0")
		}
	}()
	StopAfterDelay(-time.Second)
}
