// Package window shows fireworks in a desktop window using Ebitengine.
package window

import (
	"image/color"
	"math"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/matt-g-everett/fireworks/colour"
)

// Surface draws onto the ebiten image bound for the current frame.
type Surface struct {
	target *ebiten.Image
	blur   float64
}

// Bind sets the image that subsequent draw calls go to.
func (s *Surface) Bind(target *ebiten.Image) {
	s.target = target
}

// Clear implements show.Surface.
func (s *Surface) Clear() {
	if s.target != nil {
		s.target.Clear()
	}
}

// FillCircle implements show.Surface.
func (s *Surface) FillCircle(x, y, radius float64, c color.NRGBA) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(radius), c, true)
	s.feather(x, y, radius, c)
}

// FillRadialGradient implements show.Surface. The gradient is painted as
// concentric rings, one pixel wide, from the rim inwards.
func (s *Surface) FillRadialGradient(x, y, radius float64, g colour.Gradient) {
	if s.target == nil || radius <= 0 {
		return
	}
	rings := int(math.Ceil(radius))
	width := radius / float64(rings)
	for i := rings; i > 0; i-- {
		outer := width * float64(i)
		c := g.At((outer - width/2) / radius)
		if c.A == 0 {
			continue
		}
		vector.StrokeCircle(s.target, float32(x), float32(y), float32(outer-width/2), float32(width), c, true)
	}
	if len(g) > 0 {
		s.feather(x, y, radius, g.At(0.6))
	}
}

// StrokeLine implements show.Surface.
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	if s.target == nil || width <= 0 {
		return
	}
	vector.StrokeLine(s.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

// SetBlur implements show.Surface.
func (s *Surface) SetBlur(radius float64) {
	s.blur = radius
}

// feather approximates a blur by fading rings outside the shape's rim.
func (s *Surface) feather(x, y, radius float64, c color.NRGBA) {
	steps := int(math.Ceil(s.blur))
	for i := 1; i <= steps; i++ {
		f := 1 - ease.OutQuad(float64(i)/float64(steps+1))
		ring := c
		ring.A = uint8(float64(c.A) * f * 0.5)
		if ring.A == 0 {
			continue
		}
		vector.StrokeCircle(s.target, float32(x), float32(y), float32(radius+float64(i)-0.5), 1, ring, true)
	}
}
