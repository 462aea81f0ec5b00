package common

import "time"

// FrameClock throttles the update step: Tick reports the elapsed seconds since
// the last accepted tick and refuses ticks that arrive before FrameInterval.
type FrameClock struct {
	last    time.Time
	started bool
	min     float64
}

func NewFrameClock(now time.Time) *FrameClock {
	return &FrameClock{last: now, started: true, min: FrameInterval}
}

// Tick returns the elapsed time in seconds and whether this tick should run.
// A skipped tick leaves the reference time untouched so the elapsed time keeps
// accumulating until the next accepted tick.
func (c *FrameClock) Tick(now time.Time) (float64, bool) {
	if c == nil {
		return 0, false
	}
	if !c.started {
		c.last = now
		c.started = true
		return 0, false
	}
	elapsed := now.Sub(c.last).Seconds()
	if elapsed <= c.min {
		return elapsed, false
	}
	c.last = now
	return elapsed, true
}

// Reset makes the next tick measure from now.
func (c *FrameClock) Reset(now time.Time) {
	if c == nil {
		return
	}
	c.last = now
	c.started = true
}
