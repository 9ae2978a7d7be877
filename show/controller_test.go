package show

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/matt-g-everett/fireworks/trajectory"
	"github.com/matt-g-everett/fireworks/util"
)

type testShow struct {
	scheduler *Scheduler
	frame     *Frame
	frames    *Manual
	clock     *ManualClock
	status    []string
}

func newTestShow(mode int, modes ...Mode) *testShow {
	ts := &testShow{
		frame:  NewFrame(),
		frames: &Manual{},
		clock:  &ManualClock{},
	}
	physics := trajectory.DefaultPhysics()
	ts.scheduler = NewScheduler(Options{
		Physics:  physics,
		Settings: DefaultSettings(physics.IntervalMs),
		Modes:    modes,
		Mode:     mode,
		Surface:  ts.frame,
		Clock:    ts.clock,
		Frames:   ts.frames,
		Rand:     util.NewRand(1),
		Status:   func(s string) { ts.status = append(ts.status, s) },
	})
	return ts
}

// run advances the clock by stepMs before each queued frame until the show
// goes idle or limit frames have run.
func (ts *testShow) run(stepMs float64, limit int, each func(now float64)) int {
	n := 0
	for n < limit && ts.frames.Pending() > 0 {
		ts.clock.Advance(stepMs)
		ts.frames.RunFrame()
		n++
		if each != nil {
			each(ts.clock.NowMs())
		}
	}
	return n
}

func TestSpawnSingleRing(t *testing.T) {
	ts := newTestShow(1)
	added := ts.scheduler.Spawn(100, 100, 0)

	if added != 20 || ts.scheduler.Registry().Len() != 20 {
		t.Fatalf("added %d, registry holds %d; want 20", added, ts.scheduler.Registry().Len())
	}

	sector := 2 * math.Pi / 20
	var first *Bundle
	i := 0
	ts.scheduler.Registry().Each(func(b *Bundle) {
		if first == nil {
			first = b
		}
		base := float64(i) * sector
		if b.Angle < base-sector || b.Angle >= base+sector {
			t.Errorf("bundle %d angle %v outside [%v, %v)", i, b.Angle, base-sector, base+sector)
		}
		if b.Elevation != 0 {
			t.Errorf("bundle %d elevation = %v, want 0", i, b.Elevation)
		}
		if b.Trail != first.Trail || b.Halo != first.Halo || b.Highlight != first.Highlight {
			t.Errorf("bundle %d does not share the burst colours", i)
		}
		if b.Path[0].X != 100 || b.Path[0].Y != 100 || b.LaunchTime != 0 {
			t.Errorf("bundle %d does not start at the trigger point", i)
		}
		if b.Cursor != 0 {
			t.Errorf("bundle %d cursor = %d, want 0", i, b.Cursor)
		}
		i++
	})
}

func TestSpawnLayeredRings(t *testing.T) {
	ts := newTestShow(3)
	added := ts.scheduler.Spawn(0, 0, 0)

	if added != ts.scheduler.Mode().Bundles() || ts.scheduler.Registry().Len() != 180 {
		t.Fatalf("added %d, want 180", added)
	}

	perElevation := map[float64]int{}
	ts.scheduler.Registry().Each(func(b *Bundle) {
		perElevation[math.Round(b.Elevation*180/math.Pi)]++
	})
	for _, deg := range []float64{85, 75, 60, 45, 25, 0} {
		if perElevation[deg] != 30 {
			t.Errorf("elevation %v has %d bundles, want 30", deg, perElevation[deg])
		}
	}
}

func TestTriggerUsesClock(t *testing.T) {
	ts := newTestShow(1)
	ts.clock.Ms = 1500
	ts.scheduler.Trigger(1, 2)

	ts.scheduler.Registry().Each(func(b *Bundle) {
		if b.LaunchTime != 1500 || b.Path[0].Time != 1500 {
			t.Fatalf("launch time %v, first point %v; want 1500", b.LaunchTime, b.Path[0].Time)
		}
	})
}

func TestSingleLoop(t *testing.T) {
	ts := newTestShow(1)
	if ts.scheduler.Running() {
		t.Fatal("new scheduler is running")
	}

	ts.scheduler.Spawn(0, 0, 0)
	if !ts.scheduler.Running() || ts.frames.Pending() != 1 {
		t.Fatalf("running=%v pending=%d after spawn, want true and 1", ts.scheduler.Running(), ts.frames.Pending())
	}

	ts.scheduler.Spawn(10, 10, 0)
	if ts.frames.Pending() != 1 {
		t.Errorf("second spawn queued another loop: pending=%d", ts.frames.Pending())
	}

	ts.frames.RunFrame()
	if ts.frames.Pending() != 1 {
		t.Errorf("frame requested %d follow-ups, want 1", ts.frames.Pending())
	}
}

func TestRunUntilDrained(t *testing.T) {
	for _, mode := range []int{1, 2, 3} {
		ts := newTestShow(mode)
		ts.scheduler.Spawn(400, 300, 0)

		cursors := map[*Bundle]int{}
		live := map[*Bundle]bool{}
		ts.scheduler.Registry().Each(func(b *Bundle) { live[b] = true })

		frames := ts.run(16, 100000, func(now float64) {
			seen := map[*Bundle]bool{}
			ts.scheduler.Registry().Each(func(b *Bundle) {
				seen[b] = true
				if b.Cursor < cursors[b] {
					t.Fatalf("mode %d: cursor went back from %d to %d", mode, cursors[b], b.Cursor)
				}
				if b.Cursor > len(b.Path) {
					t.Fatalf("mode %d: cursor %d beyond %d points", mode, b.Cursor, len(b.Path))
				}
				if b.Expired(now, 2000) {
					t.Fatalf("mode %d: expired bundle kept at %v ms", mode, now)
				}
				cursors[b] = b.Cursor
			})
			for b := range live {
				if !seen[b] {
					if !b.Expired(now, 2000) {
						t.Fatalf("mode %d: bundle removed before expiry at %v ms", mode, now)
					}
					delete(live, b)
				}
			}
		})

		if ts.scheduler.Running() {
			t.Errorf("mode %d: still running after %d frames", mode, frames)
		}
		if n := ts.scheduler.Registry().Len(); n != 0 {
			t.Errorf("mode %d: %d bundles left", mode, n)
		}
		if ts.frames.Pending() != 0 {
			t.Errorf("mode %d: frame still queued", mode)
		}
		// Last point at 5900 ms plus the 2000 ms window.
		if now := ts.clock.NowMs(); now <= 7900 || now > 7900+16 {
			t.Errorf("mode %d: drained at %v ms, want just after 7900", mode, now)
		}
	}
}

func TestRestartAfterIdle(t *testing.T) {
	ts := newTestShow(1)
	ts.scheduler.Spawn(0, 0, 0)
	ts.run(50, 10000, nil)
	if ts.scheduler.Running() {
		t.Fatal("did not go idle")
	}

	ts.scheduler.Trigger(0, 0)
	if !ts.scheduler.Running() || ts.frames.Pending() != 1 {
		t.Error("trigger after idle did not restart the loop")
	}
}

func TestRenderOrder(t *testing.T) {
	ts := newTestShow(1)
	ts.scheduler.Spawn(0, 0, 0)

	ts.run(16, 2, nil)
	// 20 bundles, each drawing its first segment, halo and highlight.
	ops := ts.frame.Ops()
	if len(ops) != 60 {
		t.Fatalf("got %d ops, want 60", len(ops))
	}
	for i := 0; i < len(ops); i += 3 {
		if ops[i].Kind != OpLine || ops[i+1].Kind != OpGradient || ops[i+2].Kind != OpCircle {
			t.Fatalf("ops %d..%d = %v %v %v, want line, gradient, circle", i, i+2, ops[i].Kind, ops[i+1].Kind, ops[i+2].Kind)
		}
	}
}

func TestFreeRunningIgnoresClock(t *testing.T) {
	ts := newTestShow(1)
	ts.scheduler.Spawn(0, 0, 0)

	if n := ts.frames.RunUntilIdle(5); n != 5 {
		t.Fatalf("ran %d frames, want 5", n)
	}
	ts.scheduler.Registry().Each(func(b *Bundle) {
		if b.Cursor != 5 {
			t.Fatalf("cursor = %d after 5 frames, want 5", b.Cursor)
		}
	})
}

func TestFixedIntervalFollowsClock(t *testing.T) {
	single := Mode{ID: 7, Particles: 1, Elevations: []float64{0}, Discipline: NewFixedInterval(100, 200, 2000)}
	ts := newTestShow(7, single)
	ts.scheduler.Spawn(0, 0, 0)

	var b *Bundle
	ts.scheduler.Registry().Each(func(x *Bundle) { b = x })

	ts.run(50, 1, nil)
	if b.Cursor != 0 || len(ts.frame.Ops()) != 0 {
		t.Fatalf("at 50 ms cursor=%d ops=%d, want nothing yet", b.Cursor, len(ts.frame.Ops()))
	}

	ts.run(200, 1, nil) // 250 ms: point 1 is the only highlight
	if b.Cursor != 2 {
		t.Errorf("at 250 ms cursor = %d, want 2", b.Cursor)
	}
	ops := ts.frame.Ops()
	if len(ops) < 3 || ops[0].Kind != OpLine {
		t.Fatalf("ops = %+v, want a trail first", ops)
	}
	if ts.frame.Count(OpGradient) != 1 {
		t.Errorf("drew %d halos, want 1", ts.frame.Count(OpGradient))
	}
	if ops[len(ops)-2].Kind != OpGradient || ops[len(ops)-1].Kind != OpCircle {
		t.Error("halo and highlight are not drawn last")
	}
	if last := ops[len(ops)-1]; last.X != b.Path[1].X || last.Y != b.Path[1].Y {
		t.Errorf("highlight at (%v, %v), want point 1", last.X, last.Y)
	}

	ts.run(1e6, 1, nil)
	if b.Cursor != len(b.Path) {
		t.Errorf("cursor = %d long after launch, want %d", b.Cursor, len(b.Path))
	}
	if ts.scheduler.Registry().Len() != 0 || ts.scheduler.Running() {
		t.Error("bundle not retired long after launch")
	}
}

func TestFixedIntervalWindows(t *testing.T) {
	d := NewFixedInterval(100, 200, 2000)
	b := &Bundle{Path: straightPath(60, 0)}

	tests := []struct {
		name       string
		now        float64
		trailBegin int
		trailEnd   int
		heads      []int
		target     int
	}{
		{"before launch", 0, 0, -1, nil, 0},
		{"first highlight", 250, 0, 1, []int{1}, 2},
		// Points older than highlight plus trail duration (2200 ms) leave the trail.
		{"trailing edge", 3000, 8, 29, []int{28, 29}, 30},
		{"last point", 6000, 38, 59, []int{58, 59}, 60},
		{"after the highlight window", 6200, 40, 59, nil, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := d.View(b, tt.now)
			if v.Style != Streaked || v.TrailBegin != tt.trailBegin || v.TrailEnd != tt.trailEnd {
				t.Errorf("trail = [%d, %d), want [%d, %d)", v.TrailBegin, v.TrailEnd, tt.trailBegin, tt.trailEnd)
			}
			if len(v.Heads) != len(tt.heads) {
				t.Fatalf("heads = %v, want %v", v.Heads, tt.heads)
			}
			for i := range tt.heads {
				if v.Heads[i] != tt.heads[i] {
					t.Errorf("heads = %v, want %v", v.Heads, tt.heads)
					break
				}
			}
			if got := d.Target(b, tt.now); got != tt.target {
				t.Errorf("target = %d, want %d", got, tt.target)
			}
		})
	}
}

func TestFixedIntervalDrawsNothingAfterHighlight(t *testing.T) {
	single := Mode{ID: 7, Particles: 1, Elevations: []float64{0}, Discipline: NewFixedInterval(100, 200, 2000)}
	ts := newTestShow(7, single)
	ts.scheduler.Spawn(0, 0, 0)

	// Last point at 5900 ms; its highlight ends at 6100 ms.
	ts.run(6200, 1, nil)
	if n := len(ts.frame.Ops()); n != 0 {
		t.Errorf("drew %d ops after the last highlight, want 0", n)
	}
	if ts.scheduler.Registry().Len() != 1 || !ts.scheduler.Running() {
		t.Error("bundle retired before its visible window elapsed")
	}
}

func TestEmptyBundleRetires(t *testing.T) {
	ts := newTestShow(2)
	ts.scheduler.Registry().Add(&Bundle{})
	ts.scheduler.start()

	ts.run(16, 1, nil)
	if ts.scheduler.Registry().Len() != 0 || ts.scheduler.Running() {
		t.Error("empty bundle was not retired on the first frame")
	}
}

func TestStatusReadout(t *testing.T) {
	ts := newTestShow(1)
	ts.scheduler.Spawn(0, 0, 0)
	ts.run(16, 1, nil)

	if len(ts.status) != 1 || ts.status[0] != "Current Time: 16.00 ms" {
		t.Errorf("status = %q", ts.status)
	}
}

func TestSetMode(t *testing.T) {
	ts := newTestShow(1)
	if !ts.scheduler.SetMode(2) || ts.scheduler.Mode().ID != 2 {
		t.Fatal("SetMode(2) failed")
	}
	if ts.scheduler.Mode().Discipline.Name() != PlaybackFixedInterval {
		t.Errorf("mode 2 plays %s", ts.scheduler.Mode().Discipline.Name())
	}
	if ts.scheduler.SetMode(42) || ts.scheduler.Mode().ID != 2 {
		t.Error("unknown mode changed the active mode")
	}
}

func TestNewDiscipline(t *testing.T) {
	settings := DefaultSettings(100)
	d, err := NewDiscipline(PlaybackFixedInterval, 100, settings)
	if err != nil {
		t.Fatal(err)
	}
	fi, ok := d.(FixedInterval)
	if !ok || fi.HighlightMs != 200 || fi.TrailMs != 2000 {
		t.Errorf("discipline = %+v", d)
	}
	if _, err := NewDiscipline("backwards", 100, settings); err == nil {
		t.Error("unknown playback accepted")
	}
}

func TestTickerDrainsShow(t *testing.T) {
	physics := trajectory.DefaultPhysics()
	clock := &ManualClock{}
	ticker := NewTicker(time.Millisecond)
	s := NewScheduler(Options{
		Physics:  physics,
		Settings: DefaultSettings(physics.IntervalMs),
		Surface:  NewFrame(),
		Clock:    clock,
		Frames:   ticker,
		Rand:     util.NewRand(7),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	frames := 0
	ticker.AfterFrame = func() {
		frames++
		clock.Advance(100)
		if !s.Running() {
			cancel()
		}
	}
	ticker.Post(func() { s.Trigger(10, 10) })

	err := ticker.Run(ctx)
	if err != context.Canceled {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
	if s.Running() || s.Registry().Len() != 0 {
		t.Errorf("show not drained after %d frames", frames)
	}
}

func TestTickerPostAfterStop(t *testing.T) {
	ticker := NewTicker(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ticker.Run(ctx); err != context.Canceled {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}

	posted := make(chan int)
	go func() {
		accepted := 0
		for i := 0; i < 32; i++ {
			if ticker.Post(func() {}) {
				accepted++
			}
		}
		posted <- accepted
	}()

	select {
	case n := <-posted:
		if n != 0 {
			t.Errorf("stopped ticker accepted %d posts, want 0", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Post blocked after Run returned")
	}
}
