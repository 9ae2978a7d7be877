package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/matt-g-everett/fireworks/backend/headless"
	"github.com/matt-g-everett/fireworks/backend/terminal"
	"github.com/matt-g-everett/fireworks/backend/window"
	"github.com/matt-g-everett/fireworks/config"
	"github.com/matt-g-everett/fireworks/show"
	"github.com/matt-g-everett/fireworks/util"
)

type app struct {
	Config config.Config
	Modes  []show.Mode
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) readConfig(configPath string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.Config = c
	return nil
}

// newScheduler is the show.Factory handed to every backend.
func (a *app) newScheduler(surface show.Surface, frames show.FrameRequester, status func(string)) *show.Scheduler {
	seed := a.Config.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	log.Printf("Random seed %d", seed)

	return show.NewScheduler(show.Options{
		Physics:  a.Config.Physics,
		Settings: a.Config.Render,
		Modes:    a.Modes,
		Mode:     a.Config.Mode,
		Surface:  surface,
		Clock:    show.NewMonotonicClock(),
		Frames:   frames,
		Rand:     util.NewRand(seed),
		Status:   status,
	})
}

func (a *app) run(ctx context.Context) error {
	c := a.Config
	switch c.Backend {
	case config.BackendTerminal:
		t, err := terminal.NewApp(c.Headless.FrameRateHz, a.newScheduler)
		if err != nil {
			return err
		}
		return t.Run(ctx)
	case config.BackendHeadless:
		triggers := make([]headless.Point, len(c.Headless.Triggers))
		for i, p := range c.Headless.Triggers {
			triggers[i] = headless.Point{X: p.X, Y: p.Y}
		}
		_, err := headless.Run(ctx, c.Headless.FrameRateHz, triggers, a.newScheduler)
		return err
	default:
		return window.Run(c.Window.Title, c.Window.Width, c.Window.Height, a.newScheduler)
	}
}

func main() {
	// Parse command line parameters
	configPath := flag.String("config", "fireworks.yaml", "YAML config file.")
	backend := flag.String("backend", "", "Backend to run: window, terminal or headless.")
	mode := flag.Int("mode", 0, "Initial mode.")
	seed := flag.Int64("seed", 0, "Random seed, 0 for time based.")
	flag.Parse()

	// Read the config
	a := newApp()
	if err := a.readConfig(*configPath); err != nil {
		log.Fatal(err)
	}
	if *backend != "" {
		a.Config.Backend = *backend
	}
	if *mode != 0 {
		a.Config.Mode = *mode
	}
	if *seed != 0 {
		a.Config.Seed = *seed
	}
	if err := a.Config.Validate(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Config: %+v", a.Config)

	modes, err := a.Config.ShowModes()
	if err != nil {
		log.Fatal(err)
	}
	a.Modes = modes

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.Fatal(err)
	}
}
