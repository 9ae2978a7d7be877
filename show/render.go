package show

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/fireworks/colour"
	"github.com/matt-g-everett/fireworks/trajectory"
	"github.com/matt-g-everett/fireworks/util"
)

// Renderer turns bundle state into draw calls on a Surface.
type Renderer struct {
	surface  Surface
	rng      util.Rand
	settings Settings
}

// NewRenderer creates a Renderer drawing onto surface.
func NewRenderer(surface Surface, rng util.Rand, settings Settings) *Renderer {
	r := new(Renderer)
	r.surface = surface
	r.rng = rng
	r.settings = settings
	return r
}

// Highlight draws the bright disc at the head of a bundle.
func (r *Renderer) Highlight(p trajectory.PathPoint, c colorful.Color, fade float64) {
	radius := util.RandomRange(r.rng, r.settings.HighlightRadius, r.settings.HighlightRadius+1)
	r.surface.FillCircle(p.X, p.Y, radius, colour.WithAlpha(c, fade))
}

// Halo draws the soft glow around the head of a bundle. Radius and brightness
// wobble with the horizontal position.
func (r *Renderer) Halo(p trajectory.PathPoint, c colorful.Color, fade float64) {
	wobble := math.Sin(p.X / 100)
	radius := r.settings.HaloRadius + wobble*2
	start := 0.4 + r.rng.Float64()*0.2 + wobble*0.1

	g := colour.Gradient{
		{Offset: 0, Colour: colour.WithAlpha(c, fade)},
		{Offset: 0.3, Colour: colour.WithAlpha(c, start*fade)},
		{Offset: 0.6, Colour: colour.WithAlpha(c, start*0.3*fade)},
		{Offset: 1, Colour: colour.WithAlpha(c, 0)},
	}

	r.surface.SetBlur(r.settings.HaloBlur)
	r.surface.FillRadialGradient(p.X, p.Y, radius, g)
	r.surface.SetBlur(0)
}

// Trail draws the segments path[j]→path[j+1] for begin <= j < end as thin
// lines whose opacity falls from 0.8 to 0 over the visible duration, measured
// from each segment's own timestamp. Segments stamped ahead of now draw
// brighter, up to fully opaque. Nothing is drawn once now has passed the
// last point of the path.
func (r *Renderer) Trail(path []trajectory.PathPoint, begin, end int, now float64, c colorful.Color, fade float64) {
	if len(path) == 0 || now > path[len(path)-1].Time {
		return
	}
	visible := r.settings.VisibleDurationMs
	begin, end = segmentRange(len(path), begin, end)
	for j := begin; j < end; j++ {
		elapsed := now - path[j].Time
		if elapsed >= visible {
			continue
		}
		opacity := 0.8 - elapsed/visible
		p, next := path[j], path[j+1]
		r.surface.StrokeLine(p.X, p.Y, next.X, next.Y, r.settings.TrailWidth, colour.WithAlpha(c, opacity*fade))
	}
}

// segmentRange clamps [begin, end) so that every j in it has a successor.
func segmentRange(n, begin, end int) (int, int) {
	if begin < 0 {
		begin = 0
	}
	if end > n-1 {
		end = n - 1
	}
	return begin, end
}
