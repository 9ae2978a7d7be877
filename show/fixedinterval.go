package show

import "math"

// FixedInterval plays paths against the clock: a point is revealed when its
// timestamp comes due, and only points inside the trail and highlight windows
// are drawn.
type FixedInterval struct {
	IntervalMs  float64
	HighlightMs float64
	TrailMs     float64
}

// NewFixedInterval creates a FixedInterval discipline.
func NewFixedInterval(intervalMs, highlightMs, trailMs float64) FixedInterval {
	return FixedInterval{IntervalMs: intervalMs, HighlightMs: highlightMs, TrailMs: trailMs}
}

// Name implements Discipline.
func (FixedInterval) Name() string {
	return PlaybackFixedInterval
}

// index converts an age offset into a path index, clamped to [0, n].
func (f FixedInterval) index(b *Bundle, now, back float64) int {
	i := math.Floor((now - back - b.LaunchTime) / f.IntervalMs)
	if math.IsNaN(i) || i < 0 {
		return 0
	}
	if n := float64(len(b.Path)); i > n {
		return len(b.Path)
	}
	return int(i)
}

// View draws the trail window as streaks and puts a head on every point of
// the highlight window that is no older than the highlight duration.
func (f FixedInterval) View(b *Bundle, now float64) View {
	trailBegin := f.index(b, now, f.HighlightMs+f.TrailMs)
	leading := f.index(b, now, 0)
	first := f.index(b, now, f.HighlightMs)

	v := View{
		Style:      Streaked,
		TrailBegin: trailBegin,
		// Segments join consecutive points of [trailBegin, leading).
		TrailEnd: leading - 1,
	}
	for j := first; j < leading; j++ {
		if now-b.Path[j].Time <= f.HighlightMs {
			v.Heads = append(v.Heads, j)
		}
	}
	return v
}

// Target is the leading edge of the highlight window.
func (f FixedInterval) Target(b *Bundle, now float64) int {
	return f.index(b, now, 0)
}
