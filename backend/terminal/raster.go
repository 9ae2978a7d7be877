// Package terminal shows fireworks in a true-colour terminal using tcell.
package terminal

import (
	"image/color"
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/fireworks/colour"
)

// Pixel size of one terminal cell. Shapes are positioned in pixels and
// sampled at cell centres.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Raster is a show.Surface over a grid of terminal cells. Every draw call
// is blended source-over into the cells it covers.
type Raster struct {
	cols, rows int
	cells      []colorful.Color
	blur       float64
}

// NewRaster creates a black raster of cols x rows cells.
func NewRaster(cols, rows int) *Raster {
	r := new(Raster)
	r.Resize(cols, rows)
	return r
}

// Resize changes the grid size and clears it.
func (r *Raster) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	r.cols, r.rows = cols, rows
	r.cells = make([]colorful.Color, cols*rows)
}

// Size returns the grid size in cells.
func (r *Raster) Size() (int, int) {
	return r.cols, r.rows
}

// At returns the colour of cell (col, row).
func (r *Raster) At(col, row int) colorful.Color {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return colorful.Color{}
	}
	return r.cells[row*r.cols+col]
}

// CellCentre converts a cell position into the pixel position of its centre.
func CellCentre(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

// Clear implements show.Surface.
func (r *Raster) Clear() {
	for i := range r.cells {
		r.cells[i] = colorful.Color{}
	}
}

// SetBlur implements show.Surface.
func (r *Raster) SetBlur(radius float64) {
	r.blur = radius
}

// FillCircle implements show.Surface.
func (r *Raster) FillCircle(x, y, radius float64, c color.NRGBA) {
	reach := radius + r.blur
	r.cover(x-reach, y-reach, x+reach, y+reach, func(px, py float64) (color.NRGBA, bool) {
		return c, r.inside(math.Hypot(px-x, py-y), radius)
	}, func(d float64) float64 {
		return r.feather(d, radius)
	}, x, y)
}

// FillRadialGradient implements show.Surface.
func (r *Raster) FillRadialGradient(x, y, radius float64, g colour.Gradient) {
	if radius <= 0 {
		return
	}
	r.cover(x-radius, y-radius, x+radius, y+radius, func(px, py float64) (color.NRGBA, bool) {
		d := math.Hypot(px-x, py-y)
		if d > radius {
			return color.NRGBA{}, false
		}
		return g.At(d / radius), true
	}, nil, x, y)
}

// StrokeLine implements show.Surface.
func (r *Raster) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	half := width/2 + CellHeight/4
	r.cover(math.Min(x1, x2)-half, math.Min(y1, y2)-half, math.Max(x1, x2)+half, math.Max(y1, y2)+half,
		func(px, py float64) (color.NRGBA, bool) {
			return c, segmentDistance(px, py, x1, y1, x2, y2) <= half
		}, nil, x1, y1)
}

// cover blends every cell whose centre lies in the box and is accepted by
// shade. When feather is set, rejected cells within the blur radius of the
// shape are blended at reduced alpha.
func (r *Raster) cover(minX, minY, maxX, maxY float64, shade func(px, py float64) (color.NRGBA, bool), feather func(d float64) float64, ox, oy float64) {
	c0 := int(math.Floor(minX / CellWidth))
	c1 := int(math.Ceil(maxX / CellWidth))
	r0 := int(math.Floor(minY / CellHeight))
	r1 := int(math.Ceil(maxY / CellHeight))
	if c0 < 0 {
		c0 = 0
	}
	if r0 < 0 {
		r0 = 0
	}
	if c1 > r.cols-1 {
		c1 = r.cols - 1
	}
	if r1 > r.rows-1 {
		r1 = r.rows - 1
	}

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px, py := CellCentre(col, row)
			c, ok := shade(px, py)
			alpha := 1.0
			if !ok {
				if feather == nil {
					continue
				}
				alpha = feather(math.Hypot(px-ox, py-oy))
				if alpha <= 0 {
					continue
				}
			}
			r.blend(col, row, c, alpha)
		}
	}
}

// inside reports whether a cell centre at distance d belongs to a circle.
// Circles smaller than a cell still light the cell nearest their centre.
func (r *Raster) inside(d, radius float64) bool {
	return d <= math.Max(radius, CellWidth/2)
}

// feather gives the alpha factor of a point blurred outside a circle.
func (r *Raster) feather(d, radius float64) float64 {
	if r.blur <= 0 || d > radius+r.blur {
		return 0
	}
	return 1 - ease.OutQuad((d-radius)/r.blur)
}

func (r *Raster) blend(col, row int, c color.NRGBA, alpha float64) {
	a := float64(c.A) / 255 * alpha
	if a <= 0 {
		return
	}
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	i := row*r.cols + col
	r.cells[i] = r.cells[i].BlendRgb(src, a).Clamped()
}

func segmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
