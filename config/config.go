// Package config loads the YAML configuration of a fireworks show.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/fireworks/show"
	"github.com/matt-g-everett/fireworks/trajectory"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Backend names.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

// Mode describes one burst style as written in the config file. Elevations
// are in degrees.
type Mode struct {
	ID         int       `yaml:"id"`
	Particles  int       `yaml:"particles"`
	Elevations []float64 `yaml:"elevations"`
	Playback   string    `yaml:"playback"`
}

// Point is a surface position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Config is the whole configuration. Every field is optional; missing values
// keep their defaults.
type Config struct {
	Physics trajectory.Physics `yaml:"physics"`
	Render  show.Settings      `yaml:"render"`
	Modes   []Mode             `yaml:"modes"`
	Mode    int                `yaml:"mode"`
	Seed    int64              `yaml:"seed"`
	Backend string             `yaml:"backend"`

	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	Headless struct {
		FrameRateHz float64 `yaml:"frameRateHz"`
		Triggers    []Point `yaml:"triggers"`
	} `yaml:"headless"`
}

// Default returns the stock configuration.
func Default() Config {
	var c Config
	c.Physics = trajectory.DefaultPhysics()
	c.Render = show.DefaultSettings(c.Physics.IntervalMs)
	c.Modes = []Mode{
		{ID: 1, Particles: 20, Elevations: []float64{0}, Playback: show.PlaybackFreeRunning},
		{ID: 2, Particles: 60, Elevations: []float64{0}, Playback: show.PlaybackFixedInterval},
		{ID: 3, Particles: 30, Elevations: []float64{85, 75, 60, 45, 25, 0}, Playback: show.PlaybackFreeRunning},
	}
	c.Mode = 1
	c.Backend = BackendWindow
	c.Window.Width = 1280
	c.Window.Height = 720
	c.Window.Title = "Fireworks"
	c.Headless.FrameRateHz = 60
	c.Headless.Triggers = []Point{{X: 640, Y: 360}}
	return c
}

// Decode reads YAML from r on top of the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	// Left unset, the highlight window follows the decoded sampling interval.
	c.Render.HighlightDurationMs = 0
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.Render.HighlightDurationMs == 0 {
		c.Render.HighlightDurationMs = 2 * c.Physics.IntervalMs
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Config %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks the values the simulation cannot run without.
func (c Config) Validate() error {
	if c.Physics.IntervalMs <= 0 {
		return fmt.Errorf("%w: physics.intervalMs must be positive, got %v", ErrInvalid, c.Physics.IntervalMs)
	}
	if c.Physics.DurationSec <= 0 {
		return fmt.Errorf("%w: physics.durationSec must be positive, got %v", ErrInvalid, c.Physics.DurationSec)
	}
	if c.Physics.Drag <= 0 {
		return fmt.Errorf("%w: physics.drag must be positive, got %v", ErrInvalid, c.Physics.Drag)
	}
	if c.Render.HighlightDurationMs <= 0 {
		return fmt.Errorf("%w: render.highlightDurationMs must be positive, got %v", ErrInvalid, c.Render.HighlightDurationMs)
	}
	if c.Render.FadeOutSpeed <= 0 {
		return fmt.Errorf("%w: render.fadeOutSpeed must be positive, got %v", ErrInvalid, c.Render.FadeOutSpeed)
	}
	if c.Render.TrailDurationMs <= 0 || c.Render.MaxSparkDistance <= 0 {
		return fmt.Errorf("%w: render.trailDurationMs and render.maxSparkDistance must be positive", ErrInvalid)
	}
	if len(c.Modes) == 0 {
		return fmt.Errorf("%w: no modes", ErrInvalid)
	}

	seen := make(map[int]bool, len(c.Modes))
	for _, m := range c.Modes {
		if seen[m.ID] {
			return fmt.Errorf("%w: mode %d defined twice", ErrInvalid, m.ID)
		}
		seen[m.ID] = true
		if m.Particles <= 0 {
			return fmt.Errorf("%w: mode %d: particles must be positive, got %d", ErrInvalid, m.ID, m.Particles)
		}
		if len(m.Elevations) == 0 {
			return fmt.Errorf("%w: mode %d: no elevations", ErrInvalid, m.ID)
		}
		if _, err := show.NewDiscipline(m.Playback, c.Physics.IntervalMs, c.Render); err != nil {
			return fmt.Errorf("%w: mode %d: %v", ErrInvalid, m.ID, err)
		}
		for _, e := range m.Elevations {
			if e <= -90 || e >= 90 {
				return fmt.Errorf("%w: mode %d: elevation %v must be inside (-90, 90)", ErrInvalid, m.ID, e)
			}
		}
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal, BackendHeadless:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if c.Headless.FrameRateHz <= 0 {
		return fmt.Errorf("%w: headless.frameRateHz must be positive, got %v", ErrInvalid, c.Headless.FrameRateHz)
	}
	if !seen[c.Mode] {
		return fmt.Errorf("%w: active mode %d is not defined", ErrInvalid, c.Mode)
	}
	return nil
}

// ShowModes turns the configured modes into scheduler modes.
func (c Config) ShowModes() ([]show.Mode, error) {
	modes := make([]show.Mode, 0, len(c.Modes))
	for _, m := range c.Modes {
		d, err := show.NewDiscipline(m.Playback, c.Physics.IntervalMs, c.Render)
		if err != nil {
			return nil, fmt.Errorf("%w: mode %d: %v", ErrInvalid, m.ID, err)
		}
		modes = append(modes, show.Mode{
			ID:         m.ID,
			Particles:  m.Particles,
			Elevations: m.Elevations,
			Discipline: d,
		})
	}
	return modes, nil
}
