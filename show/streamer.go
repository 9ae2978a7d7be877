package show

import (
	"context"
	"time"
)

// A FrameRequester runs a callback on the next frame. It is how the scheduler
// yields between frames.
type FrameRequester interface {
	RequestFrame(fn func())
}

// Manual holds requested frames until the caller runs them.
type Manual struct {
	pending []func()
}

// RequestFrame queues fn.
func (m *Manual) RequestFrame(fn func()) {
	m.pending = append(m.pending, fn)
}

// Pending returns the number of queued frames.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// RunFrame runs the oldest queued frame and reports whether there was one.
func (m *Manual) RunFrame() bool {
	if len(m.pending) == 0 {
		return false
	}
	fn := m.pending[0]
	m.pending = m.pending[1:]
	fn()
	return true
}

// RunUntilIdle runs frames until none are queued or limit frames have run,
// returning how many ran.
func (m *Manual) RunUntilIdle(limit int) int {
	n := 0
	for n < limit && m.RunFrame() {
		n++
	}
	return n
}

// Ticker runs requested frames from a single goroutine at a fixed rate.
// Work posted with Post runs on the same goroutine between frames.
type Ticker struct {
	interval time.Duration
	pending  func()
	posted   chan func()
	done     chan struct{}

	// AfterFrame, when set, is called after every frame that ran.
	AfterFrame func()
}

// NewTicker creates a Ticker producing a frame every interval.
func NewTicker(interval time.Duration) *Ticker {
	t := new(Ticker)
	t.interval = interval
	t.posted = make(chan func(), 16)
	t.done = make(chan struct{})
	return t
}

// RequestFrame schedules fn for the next tick. Only the latest request is
// kept. It must be called from the Run goroutine.
func (t *Ticker) RequestFrame(fn func()) {
	t.pending = fn
}

// Post hands fn to the Run goroutine. It may be called from any goroutine.
// Once Run has returned, fn is dropped and Post reports false.
func (t *Ticker) Post(fn func()) bool {
	select {
	case <-t.done:
		return false
	default:
	}
	select {
	case t.posted <- fn:
		return true
	case <-t.done:
		return false
	}
}

// Run ticks until ctx is done. A Ticker runs once.
func (t *Ticker) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(t.interval)
	defer publishTimer.Stop()
	defer close(t.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-t.posted:
			fn()
		case <-publishTimer.C:
			fn := t.pending
			t.pending = nil
			if fn == nil {
				continue
			}
			fn()
			if t.AfterFrame != nil {
				t.AfterFrame()
			}
		}
	}
}
