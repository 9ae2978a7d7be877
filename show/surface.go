package show

import (
	"image/color"

	"github.com/matt-g-everett/fireworks/colour"
)

// A Surface is the drawing backend a show renders onto. Coordinates are in
// surface pixels with y growing downwards.
type Surface interface {
	// Clear wipes the whole surface. It is called once at the start of every
	// frame.
	Clear()
	FillCircle(x, y, radius float64, c color.NRGBA)
	FillRadialGradient(x, y, radius float64, g colour.Gradient)
	StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA)
	// SetBlur sets the soft-blur radius applied to subsequent fills. Zero
	// turns blurring off.
	SetBlur(radius float64)
}
