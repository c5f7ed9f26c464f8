package eqaux

import (
	"math"
	"time"
)

// FPSCounter averages the frame rate over fixed intervals.
type FPSCounter struct {
	Interval time.Duration
	frames   int
	start    float64
	started  bool
}

// Frame records a frame presented at now seconds. When an interval has elapsed since the
// last report it returns the mean frame rate over it and ok=true, then starts a new interval.
func (c *FPSCounter) Frame(now float64) (fps float64, ok bool) {
	if !c.started {
		c.start, c.started = now, true
		return 0, false
	}
	c.frames++
	elapsed := now - c.start
	if elapsed < c.Interval.Seconds() || elapsed <= 0 {
		return 0, false
	}
	fps = float64(c.frames) / elapsed
	c.frames = 0
	c.start = now
	return fps, true
}

// FrameTimer converts a seconds clock into whole millisecond frame durations.
// Timestamps are truncated, not durations, so sub-millisecond remainders carry over
// to later frames and the durations sum to the real elapsed time.
type FrameTimer struct {
	lastMillis int64
}

// NewFrameTimer returns a timer whose first frame starts at now seconds.
func NewFrameTimer(now float64) FrameTimer {
	return FrameTimer{lastMillis: toMillis(now)}
}

// Elapsed returns the milliseconds since the previous call, or since creation.
// A clock running backwards yields 0.
func (ft *FrameTimer) Elapsed(now float64) int {
	ms := toMillis(now)
	elapsed := ms - ft.lastMillis
	if elapsed < 0 {
		return 0
	}
	ft.lastMillis = ms
	return int(elapsed)
}

func toMillis(seconds float64) int64 { return int64(math.Floor(seconds * 1000)) }
