package colour

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is one colour stop of a radial gradient. Offset runs from 0 at the
// centre to 1 at the rim.
type Stop struct {
	Offset float64
	Colour color.NRGBA
}

// Gradient is an ordered list of stops.
type Gradient []Stop

// At gets the colour at offset t, interpolating linearly between the two
// surrounding stops.
func (g Gradient) At(t float64) color.NRGBA {
	if len(g) == 0 {
		return Fallback
	}
	if t <= g[0].Offset {
		return g[0].Colour
	}

	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Offset <= t && t <= c2.Offset {
			span := c2.Offset - c1.Offset
			if span <= 0 {
				return c2.Colour
			}
			return lerp(c1.Colour, c2.Colour, (t-c1.Offset)/span)
		}
	}

	// Past the last stop.
	return g[len(g)-1].Colour
}

// lerp blends the colour channels in RGB and the alpha linearly.
func lerp(a, b color.NRGBA, f float64) color.NRGBA {
	r, g, bl := rgb(a).BlendRgb(rgb(b), f).Clamped().RGB255()
	alpha := math.Round(float64(a.A) + (float64(b.A)-float64(a.A))*f)
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha)}
}

func rgb(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
