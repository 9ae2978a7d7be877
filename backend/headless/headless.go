// Package headless plays a show without a display, recording every frame.
package headless

import (
	"context"
	"log"
	"time"

	"github.com/matt-g-everett/fireworks/show"
)

// Point is a trigger position in pixels.
type Point struct {
	X, Y float64
}

// Result summarises a headless run.
type Result struct {
	Frames  int
	Bundles int
	Ops     int
}

// Run fires a burst at each trigger and ticks at frameRate until the show
// drains or ctx is done.
func Run(ctx context.Context, frameRate float64, triggers []Point, factory show.Factory) (Result, error) {
	var res Result
	if len(triggers) == 0 {
		log.Printf("No triggers, nothing to play")
		return res, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frame := show.NewFrame()
	ticker := show.NewTicker(time.Duration(float64(time.Second) / frameRate))
	scheduler := factory(frame, ticker, nil)

	drained := false
	ticker.AfterFrame = func() {
		res.Frames++
		res.Ops += len(frame.Ops())
		if !scheduler.Running() {
			drained = true
			cancel()
		}
	}
	ticker.Post(func() {
		for _, p := range triggers {
			res.Bundles += scheduler.Trigger(p.X, p.Y)
		}
	})

	err := ticker.Run(ctx)
	if drained {
		err = nil
	}
	log.Printf("Played %d bundles over %d frames, %d draw calls", res.Bundles, res.Frames, res.Ops)
	return res, err
}
