package show

import (
	"fmt"
	"log"
	"math"

	"github.com/matt-g-everett/fireworks/colour"
	"github.com/matt-g-everett/fireworks/trajectory"
	"github.com/matt-g-everett/fireworks/util"
)

// Options configures a Scheduler. Surface, Clock, Frames and Rand are
// required; Modes defaults to DefaultModes.
type Options struct {
	Physics  trajectory.Physics
	Settings Settings
	Modes    []Mode
	Mode     int

	Surface Surface
	Clock   Clock
	Frames  FrameRequester
	Rand    util.Rand

	// Status, when set, receives a readout of the frame time every frame.
	Status func(string)
}

// A Factory builds a Scheduler around the surface, frame source and status
// sink of a backend.
type Factory func(surface Surface, frames FrameRequester, status func(string)) *Scheduler

// Scheduler owns the live bundles of one rendering session and drives them
// frame by frame. It is idle until the first trigger and goes idle again as
// soon as the last bundle expires.
type Scheduler struct {
	registry *Registry
	renderer *Renderer
	physics  trajectory.Physics
	settings Settings

	modes map[int]Mode
	mode  Mode

	surface Surface
	clock   Clock
	frames  FrameRequester
	rng     util.Rand
	status  func(string)

	running bool
	frame   int
}

// NewScheduler creates an idle Scheduler.
func NewScheduler(opts Options) *Scheduler {
	s := new(Scheduler)
	s.registry = NewRegistry()
	s.physics = opts.Physics
	s.settings = opts.Settings
	s.surface = opts.Surface
	s.clock = opts.Clock
	s.frames = opts.Frames
	s.rng = opts.Rand
	s.status = opts.Status
	s.renderer = NewRenderer(opts.Surface, opts.Rand, opts.Settings)
	if _, err := colour.ParseAny(opts.Settings.SparkColour); err != nil {
		log.Printf("Spark colour: %v, using fallback", err)
	}

	modes := opts.Modes
	if len(modes) == 0 {
		modes = DefaultModes(opts.Physics.IntervalMs, opts.Settings)
	}
	s.modes = make(map[int]Mode, len(modes))
	for _, m := range modes {
		s.modes[m.ID] = m
	}
	s.mode = modes[0]
	s.SetMode(opts.Mode)

	return s
}

// Registry exposes the live bundles.
func (s *Scheduler) Registry() *Registry {
	return s.registry
}

// Running reports whether a frame is scheduled.
func (s *Scheduler) Running() bool {
	return s.running
}

// Mode returns the active mode.
func (s *Scheduler) Mode() Mode {
	return s.mode
}

// SetMode switches the active mode. It applies to later bursts and to the
// playback of bundles already in flight. Unknown ids are ignored.
func (s *Scheduler) SetMode(id int) bool {
	m, ok := s.modes[id]
	if !ok {
		if id != 0 {
			log.Printf("Unknown mode %d, keeping mode %d", id, s.mode.ID)
		}
		return false
	}
	if m.ID != s.mode.ID {
		log.Printf("Mode %d: %d bundles per burst, %s", m.ID, m.Bundles(), m.Discipline.Name())
	}
	s.mode = m
	return true
}

// Trigger spawns a burst at (x, y) stamped with the current clock time.
func (s *Scheduler) Trigger(x, y float64) int {
	return s.Spawn(x, y, s.clock.NowMs())
}

// Spawn launches a burst at (x0, y0) at time t0 using the active mode: one
// ring of Particles bundles per elevation. The whole burst shares one hue.
// It returns the number of bundles added.
func (s *Scheduler) Spawn(x0, y0, t0 float64) int {
	m := s.mode
	if m.Particles <= 0 {
		return 0
	}

	sector := 2 * math.Pi / float64(m.Particles)
	palette := colour.Family(colour.RandomHue(s.rng))

	added := 0
	for _, degrees := range m.Elevations {
		theta := degrees * math.Pi / 180
		for i := 0; i < m.Particles; i++ {
			// Dividing by cos(theta) keeps rings that are tilted away from the
			// viewer evenly spread once projected.
			angle := float64(i)*sector/math.Cos(theta) + util.Jitter(s.rng, sector)
			path := s.physics.Generate(s.rng, x0, y0, t0, angle, theta)
			s.registry.Add(newBundle(path, t0, angle, theta, palette))
			added++
		}
	}

	s.start()
	return added
}

func (s *Scheduler) start() {
	if s.running || s.registry.Len() == 0 {
		return
	}
	s.running = true
	log.Printf("Animation started with %d bundles", s.registry.Len())
	s.frames.RequestFrame(s.Step)
}

// Step renders one frame: every bundle is drawn and advanced by the active
// discipline, expired bundles are retired, and the next frame is requested
// while any bundle remains.
func (s *Scheduler) Step() {
	s.surface.Clear()
	now := s.clock.NowMs()
	s.frame++
	if s.status != nil {
		s.status(fmt.Sprintf("Current Time: %.2f ms", now))
	}

	d := s.mode.Discipline
	s.registry.Sweep(func(b *Bundle) bool {
		s.play(d, b, now)
		return !b.Expired(now, s.settings.VisibleDurationMs)
	})

	if s.registry.Len() > 0 {
		s.frames.RequestFrame(s.Step)
		return
	}
	s.running = false
	log.Printf("Animation stopped after %d frames", s.frame)
	s.frame = 0
}

// play draws one bundle in trail, halo, highlight order and moves its cursor.
func (s *Scheduler) play(d Discipline, b *Bundle, now float64) {
	fade := b.FadeOut(s.settings.FadeOutSpeed)
	v := d.View(b, now)

	if len(v.Heads) > 0 {
		switch v.Style {
		case Streaked:
			s.renderer.Streak(b.Path, v.TrailBegin, v.TrailEnd, now, b.Trail, fade)
		default:
			s.renderer.Trail(b.Path, v.TrailBegin, v.TrailEnd, now, b.Trail, fade)
		}
		for _, j := range v.Heads {
			s.renderer.Halo(b.Path[j], b.Halo, fade)
			s.renderer.Highlight(b.Path[j], b.Highlight, fade)
		}
	}

	b.Advance(d.Target(b, now))
}
