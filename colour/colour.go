// Package colour converts firework hues into drawable colours.
//
// Colours are carried as colorful.Color (float RGB) until the moment they
// are handed to a surface, where WithAlpha turns them into color.NRGBA.
package colour

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/fireworks/util"
)

// Fallback is drawn whenever a colour cannot be resolved.
var Fallback = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Palette holds the three related colours of one burst.
type Palette struct {
	Trail     colorful.Color
	Halo      colorful.Color
	Highlight colorful.Color
}

// HslToRgb converts hue (degrees), saturation and lightness (0..1) to RGB.
// The hue wraps around the colour wheel and the other channels are clamped.
func HslToRgb(hue, saturation, lightness float64) colorful.Color {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	if math.IsNaN(h) {
		h = 0
	}
	s := util.Clamp(saturation, 0, 1)
	l := util.Clamp(lightness, 0, 1)
	return colorful.Hsl(h, s, l).Clamped()
}

// WithAlpha attaches an opacity to c. Alpha is clamped to [0, 1]; a NaN
// alpha yields an opaque colour.
func WithAlpha(c colorful.Color, alpha float64) color.NRGBA {
	if math.IsNaN(alpha) {
		alpha = 1
	}
	alpha = util.Clamp(alpha, 0, 1)
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// Family derives the trail, halo and highlight colours of a burst from a
// single hue: the trail is shifted 30 degrees and the highlight is lighter.
func Family(hue float64) Palette {
	return Palette{
		Trail:     HslToRgb(hue+30, 1.0, 0.6),
		Halo:      HslToRgb(hue, 1.0, 0.6),
		Highlight: HslToRgb(hue, 1.0, 0.8),
	}
}

// RandomHue picks a whole-degree hue.
func RandomHue(rng util.Rand) float64 {
	return math.Round(rng.Float64() * 360)
}
