package show

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/fireworks/colour"
	"github.com/matt-g-everett/fireworks/trajectory"
	"github.com/matt-g-everett/fireworks/util"
)

// Streak draws the flickering trail used by fixed-interval playback: each
// segment path[j]→path[j+1], begin <= j < end, darkens then fades and thins
// with age, its endpoints jitter every frame, and sparks are scattered
// around it.
func (r *Renderer) Streak(path []trajectory.PathPoint, begin, end int, now float64, c colorful.Color, fade float64) {
	s := r.settings
	begin, end = segmentRange(len(path), begin, end)
	for j := begin; j < end; j++ {
		p, next := path[j], path[j+1]
		age := (now - p.Time) / s.TrailDurationMs

		darken := 1 - age*0.8
		alpha := darken - 1 + fade
		width := s.MaxTrailWidth - (s.MaxTrailWidth-s.MinTrailWidth)*age

		x1 := p.X + util.Jitter(r.rng, s.TrailJitter)
		y1 := p.Y + util.Jitter(r.rng, s.TrailJitter)
		x2 := next.X + util.Jitter(r.rng, s.TrailJitter)
		y2 := next.Y + util.Jitter(r.rng, s.TrailJitter)
		r.surface.StrokeLine(x1, y1, x2, y2, width, colour.WithAlpha(c, alpha))

		r.sparks(p, next, x1, y1, x2, y2, fade)
	}
}

// sparks makes a fixed number of attempts to drop a spark near the segment
// p→next. An attempt is accepted with a probability that falls linearly to
// zero at the maximum spark distance from the jittered line.
func (r *Renderer) sparks(p, next trajectory.PathPoint, x1, y1, x2, y2, fade float64) {
	s := r.settings
	sparkColour := colour.Parse(s.SparkColour, 0.8*fade-0.2)

	for k := 0; k < s.SparkAttempts; k++ {
		offsetX := util.Jitter(r.rng, s.MaxSparkDistance)
		offsetY := util.Jitter(r.rng, s.MaxSparkDistance)
		x := p.X + (next.X-p.X)*r.rng.Float64() + offsetX
		y := p.Y + (next.Y-p.Y)*r.rng.Float64() + offsetY

		distance := pointToLineDistance(x, y, x1, y1, x2, y2)
		probability := 1 - distance/s.MaxSparkDistance
		if r.rng.Float64() < probability {
			r.surface.FillCircle(x, y, s.SparkRadius, sparkColour)
		}
	}
}

// pointToLineDistance is the perpendicular distance from (x0, y0) to the line
// through (x1, y1) and (x2, y2). A degenerate line is treated as a point.
func pointToLineDistance(x0, y0, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(x0-x1, y0-y1)
	}
	return math.Abs(dy*x0-dx*y0+x2*y1-y2*x1) / length
}
