package show

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/fireworks/colour"
	"github.com/matt-g-everett/fireworks/trajectory"
	"github.com/matt-g-everett/fireworks/util"
)

// A Bundle is one coloured streak from a single launch.
type Bundle struct {
	Path       []trajectory.PathPoint
	Cursor     int
	LaunchTime float64
	// Angle and Elevation are the launch direction, in radians.
	Angle     float64
	Elevation float64

	Trail     colorful.Color
	Halo      colorful.Color
	Highlight colorful.Color
}

func newBundle(path []trajectory.PathPoint, launchTime, angle, elevation float64, palette colour.Palette) *Bundle {
	b := new(Bundle)
	b.Path = path
	b.Cursor = 0
	b.LaunchTime = launchTime
	b.Angle = angle
	b.Elevation = elevation
	b.Trail = palette.Trail
	b.Halo = palette.Halo
	b.Highlight = palette.Highlight
	return b
}

// Advance moves the cursor forwards to index to. The cursor never moves
// backwards and never passes the end of the path.
func (b *Bundle) Advance(to int) {
	if to > len(b.Path) {
		to = len(b.Path)
	}
	if to > b.Cursor {
		b.Cursor = to
	}
}

// Done reports whether every point has been revealed.
func (b *Bundle) Done() bool {
	return b.Cursor >= len(b.Path)
}

// FadeOut is the global opacity of the bundle. It stays at 1 until the last
// 1/speed of the path and then falls linearly to 0.
func (b *Bundle) FadeOut(speed float64) float64 {
	if len(b.Path) == 0 {
		return 0
	}
	progress := float64(b.Cursor) / float64(len(b.Path))
	return util.Clamp((1-progress)*speed, 0, 1)
}

// Expired reports whether the bundle can leave the registry: all points are
// revealed and more than window ms have passed since the last one. A bundle
// without points is always expired.
func (b *Bundle) Expired(now, window float64) bool {
	if len(b.Path) == 0 {
		return true
	}
	return b.Done() && now-b.Path[len(b.Path)-1].Time > window
}
