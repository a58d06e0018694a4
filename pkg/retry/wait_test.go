package retry

import (
	"testing"
	"time"
)

func TestFixedWait(t *testing.T) {
	wait := FixedWait(100 * time.Millisecond)

	for _, number := range []int{1, 2, 3, 10} {
		if got := wait.ComputeDelay(attemptAt(number, 0)); got != 100*time.Millisecond {
			t.Errorf("ComputeDelay(attempt %d) = %v, want 100ms", number, got)
		}
	}
}

func TestNoWait(t *testing.T) {
	if got := NoWait().ComputeDelay(attemptAt(5, 0)); got != 0 {
		t.Errorf("ComputeDelay() = %v, want 0", got)
	}
}

func TestIncrementingWait(t *testing.T) {
	wait := IncrementingWait(100*time.Millisecond, 50*time.Millisecond)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 150 * time.Millisecond},
		{3, 200 * time.Millisecond},
		{10, 550 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := wait.ComputeDelay(attemptAt(tt.attempt, 0)); got != tt.want {
			t.Errorf("ComputeDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestExponentialWait(t *testing.T) {
	wait := ExponentialWait(100*time.Millisecond, 2.0, time.Second)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{5, 1000 * time.Millisecond},  // capped
		{10, 1000 * time.Millisecond}, // capped
	}

	for _, tt := range tests {
		if got := wait.ComputeDelay(attemptAt(tt.attempt, 0)); got != tt.want {
			t.Errorf("ComputeDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestFibonacciWait(t *testing.T) {
	wait := FibonacciWait(10*time.Millisecond, time.Second)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 10 * time.Millisecond},
		{2, 10 * time.Millisecond},
		{3, 20 * time.Millisecond},
		{4, 30 * time.Millisecond},
		{5, 50 * time.Millisecond},
		{6, 80 * time.Millisecond},
		{20, time.Second}, // capped
	}

	for _, tt := range tests {
		if got := wait.ComputeDelay(attemptAt(tt.attempt, 0)); got != tt.want {
			t.Errorf("ComputeDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestRandomWait(t *testing.T) {
	min, max := 50*time.Millisecond, 150*time.Millisecond
	wait := RandomWait(min, max)

	for i := 0; i < 100; i++ {
		got := wait.ComputeDelay(attemptAt(1, 0))
		if got < min || got >= max {
			t.Fatalf("ComputeDelay() = %v, want in [%v, %v)", got, min, max)
		}
	}

	if got := RandomWait(min, min).ComputeDelay(attemptAt(1, 0)); got != min {
		t.Errorf("degenerate range: ComputeDelay() = %v, want %v", got, min)
	}
}

func TestMaxOfWaits(t *testing.T) {
	wait := MaxOfWaits(
		FixedWait(100*time.Millisecond),
		IncrementingWait(0, 60*time.Millisecond),
	)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond}, // fixed wins
		{2, 100 * time.Millisecond}, // fixed still wins over 60ms
		{3, 120 * time.Millisecond}, // incrementing overtakes
	}

	for _, tt := range tests {
		if got := wait.ComputeDelay(attemptAt(tt.attempt, 0)); got != tt.want {
			t.Errorf("ComputeDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}

	if got := MaxOfWaits().ComputeDelay(attemptAt(1, 0)); got != 0 {
		t.Errorf("empty composition: ComputeDelay() = %v, want 0", got)
	}
}

func TestWithJitter(t *testing.T) {
	base := FixedWait(100 * time.Millisecond)

	full := WithJitter(base, FullJitter)
	for i := 0; i < 100; i++ {
		got := full.ComputeDelay(attemptAt(1, 0))
		if got < 0 || got >= 100*time.Millisecond {
			t.Fatalf("FullJitter delay = %v, want in [0, 100ms)", got)
		}
	}

	equal := WithJitter(base, EqualJitter)
	for i := 0; i < 100; i++ {
		got := equal.ComputeDelay(attemptAt(1, 0))
		if got < 50*time.Millisecond || got >= 100*time.Millisecond {
			t.Fatalf("EqualJitter delay = %v, want in [50ms, 100ms)", got)
		}
	}
}

func TestWaitStrategiesNeverNegative(t *testing.T) {
	strategies := []WaitStrategy{
		IncrementingWait(-time.Second, 0),
		WithJitter(FixedWait(time.Second), func(time.Duration) time.Duration { return -1 }),
	}

	for i, s := range strategies {
		if got := s.ComputeDelay(attemptAt(1, 0)); got < 0 {
			t.Errorf("strategy %d returned negative delay %v", i, got)
		}
	}
}
