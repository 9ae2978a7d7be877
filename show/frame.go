package show

import (
	"image/color"

	"github.com/matt-g-everett/fireworks/colour"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpCircle OpKind = iota
	OpGradient
	OpLine
)

// Op is one recorded draw call.
type Op struct {
	Kind     OpKind
	X, Y     float64
	X2, Y2   float64
	Radius   float64
	Width    float64
	Blur     float64
	Colour   color.NRGBA
	Gradient colour.Gradient
}

// Frame is a Surface that records the draw calls of the current frame.
// Clear starts a new frame.
type Frame struct {
	ops    []Op
	blur   float64
	frames int
}

// NewFrame creates an empty Frame.
func NewFrame() *Frame {
	f := new(Frame)
	return f
}

// Clear implements Surface.
func (f *Frame) Clear() {
	f.ops = f.ops[:0]
	f.frames++
}

// FillCircle implements Surface.
func (f *Frame) FillCircle(x, y, radius float64, c color.NRGBA) {
	f.ops = append(f.ops, Op{Kind: OpCircle, X: x, Y: y, Radius: radius, Colour: c, Blur: f.blur})
}

// FillRadialGradient implements Surface.
func (f *Frame) FillRadialGradient(x, y, radius float64, g colour.Gradient) {
	f.ops = append(f.ops, Op{Kind: OpGradient, X: x, Y: y, Radius: radius, Gradient: g, Blur: f.blur})
}

// StrokeLine implements Surface.
func (f *Frame) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	f.ops = append(f.ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width, Colour: c, Blur: f.blur})
}

// SetBlur implements Surface.
func (f *Frame) SetBlur(radius float64) {
	f.blur = radius
}

// Ops returns the calls recorded since the last Clear.
func (f *Frame) Ops() []Op {
	return f.ops
}

// Count returns how many calls of kind were recorded since the last Clear.
func (f *Frame) Count(kind OpKind) int {
	n := 0
	for _, op := range f.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Frames returns how many times the surface has been cleared.
func (f *Frame) Frames() int {
	return f.frames
}
