package show

import "time"

// A Clock reports monotonic time in milliseconds.
type Clock interface {
	NowMs() float64
}

// MonotonicClock measures time since its creation using the runtime's
// monotonic reading, so wall-clock adjustments do not affect it.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock starting at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// NowMs returns the milliseconds elapsed since the clock was created.
func (c *MonotonicClock) NowMs() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock only moves when told to.
type ManualClock struct {
	Ms float64
}

// NowMs returns the current manual time.
func (c *ManualClock) NowMs() float64 {
	return c.Ms
}

// Advance moves the clock forward.
func (c *ManualClock) Advance(ms float64) {
	c.Ms += ms
}
