package show

import "fmt"

// TrailStyle selects how the trail of a bundle is drawn.
type TrailStyle int

const (
	// Fading draws thin lines that fade with age.
	Fading TrailStyle = iota
	// Streaked draws jittering, thinning lines with sparks.
	Streaked
)

// A View is the part of a bundle that is on screen for one frame.
type View struct {
	Style TrailStyle
	// Trail segments path[j]→path[j+1] for TrailBegin <= j < TrailEnd.
	TrailBegin int
	TrailEnd   int
	// Heads are the indices that get a halo and a highlight, in draw order.
	Heads []int
}

// A Discipline maps time onto a bundle's path: it decides which points are
// visible now and how far the cursor may move.
type Discipline interface {
	Name() string
	View(b *Bundle, now float64) View
	// Target is the cursor position the bundle should reach after this frame.
	Target(b *Bundle, now float64) int
}

// Playback names accepted by NewDiscipline.
const (
	PlaybackFreeRunning   = "free-running"
	PlaybackFixedInterval = "fixed-interval"
)

// NewDiscipline builds a discipline by name. Fixed-interval playback needs the
// sampling interval of the paths it plays.
func NewDiscipline(name string, intervalMs float64, settings Settings) (Discipline, error) {
	switch name {
	case PlaybackFreeRunning:
		return FreeRunning{}, nil
	case PlaybackFixedInterval:
		return NewFixedInterval(intervalMs, settings.HighlightDurationMs, settings.TrailDurationMs), nil
	}
	return nil, fmt.Errorf("unknown playback %q", name)
}
