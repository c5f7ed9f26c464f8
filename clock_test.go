package equilibrium

import (
	"math"
	"testing"
)

func TestAnimClockAdvance(t *testing.T) {
	const tol = 1e-12
	for _, test := range []struct {
		start, speed float64
		elapsed      int
		want         float64
	}{
		{start: 0, speed: 0.5, elapsed: 100, want: 0.05},
		{start: 0.2, speed: 2, elapsed: 250, want: 0.7},
		{start: 0.5, speed: 1, elapsed: 500, want: 1}, // Reaching Max exactly does not reset.
		{start: 0.98, speed: 0.5, elapsed: 100, want: AnimStart},
		{start: 0.9, speed: 10, elapsed: 1000, want: AnimStart}, // Overflow is discarded, not wrapped.
		{start: 0.5, speed: -1, elapsed: 100, want: 0.4},
		{start: 0.05, speed: -1, elapsed: 100, want: -0.05},
	} {
		c := NewAnimClock(test.speed)
		c.Value = test.start
		got := c.Advance(test.elapsed, test.speed)
		if math.Abs(got-test.want) > tol || c.Value != got {
			t.Errorf("start=%g speed=%g elapsed=%d: got %g, want %g", test.start, test.speed, test.elapsed, got, test.want)
		}
		wantInc := test.speed * float64(test.elapsed) / 1000
		if c.Increment != wantInc {
			t.Errorf("increment %g, want %g", c.Increment, wantInc)
		}
	}
}

func TestAnimClockZeroElapsed(t *testing.T) {
	c := NewAnimClock(0.5)
	c.Value = 0.3
	for i := 0; i < 100; i++ {
		if got := c.Advance(0, 0.5); got != 0.3 {
			t.Fatalf("advance(0) changed clock to %g", got)
		}
	}
	if c.Increment != 0 {
		t.Error("expected zero increment")
	}
}

func TestAnimClockStaysInRange(t *testing.T) {
	c := NewAnimClock(0.5)
	for i := 0; i < 10000; i++ {
		v := c.Advance(i%97, 0.5)
		if v < AnimStart || v > AnimMax {
			t.Fatalf("clock out of range: %g", v)
		}
	}
}

func TestNewAnimClockIncrement(t *testing.T) {
	c := NewAnimClock(0.6)
	if c.Value != AnimStart || math.Abs(c.Increment-0.01) > 1e-15 {
		t.Errorf("unexpected initial clock %+v", c)
	}
}
