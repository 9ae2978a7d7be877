// Package trajectory simulates the flight of a single firework particle.
//
// Motion is a projectile under gravity with linear drag, evaluated in closed
// form and sampled at a fixed interval. The vertical axis of the returned
// points grows downwards, matching screen coordinates.
package trajectory

import (
	"math"

	"github.com/matt-g-everett/fireworks/util"
)

// PathPoint is a simulated position stamped with an absolute time in
// milliseconds.
type PathPoint struct {
	X    float64
	Y    float64
	Time float64
}

// Physics holds the constants of the flight model.
type Physics struct {
	Drag           float64 `yaml:"drag"`           // k, 1/s
	Gravity        float64 `yaml:"gravity"`        // g
	IntervalMs     float64 `yaml:"intervalMs"`     // sampling interval
	DurationSec    float64 `yaml:"durationSec"`    // simulated flight time
	MinSpeed       float64 `yaml:"minSpeed"`       // launch speed at elevation 0
	SpeedIncrement float64 `yaml:"speedIncrement"` // random extra launch speed
}

// DefaultPhysics returns the stock flight model.
func DefaultPhysics() Physics {
	return Physics{
		Drag:           0.2,
		Gravity:        9.8,
		IntervalMs:     100,
		DurationSec:    6,
		MinSpeed:       80,
		SpeedIncrement: 20,
	}
}

// Samples is the number of points in every generated path.
func (p Physics) Samples() int {
	n := int(math.Ceil(p.DurationSec * 1000 / p.IntervalMs))
	if n < 1 {
		return 1
	}
	return n
}

// LaunchSpeed draws an initial speed. Steeper elevations launch slower so the
// projected burst looks foreshortened.
func (p Physics) LaunchSpeed(rng util.Rand, elevation float64) float64 {
	return p.MinSpeed*math.Cos(elevation) + rng.Float64()*p.SpeedIncrement
}

// Path samples the flight from (x0, y0) launched at t0 with the given speed
// and emission angle. The result always holds at least the launch point and
// does not consume randomness.
func (p Physics) Path(x0, y0, t0, speed, angle float64) []PathPoint {
	vx0 := speed * math.Cos(angle)
	vy0 := speed * math.Sin(angle)
	k := p.Drag
	g := p.Gravity

	n := p.Samples()
	points := make([]PathPoint, n)
	for i := 0; i < n; i++ {
		offsetMs := float64(i) * p.IntervalMs
		t := offsetMs / 1000
		decay := 1 - math.Exp(-k*t)
		x := x0 + (vx0/k)*decay
		y := y0 - (((vy0*k+g)/(k*k))*decay - (g/k)*t)
		points[i] = PathPoint{X: x, Y: y, Time: t0 + offsetMs}
	}
	return points
}

// Generate draws a launch speed for the elevation and samples the path.
func (p Physics) Generate(rng util.Rand, x0, y0, t0, angle, elevation float64) []PathPoint {
	return p.Path(x0, y0, t0, p.LaunchSpeed(rng, elevation), angle)
}

// Velocity is the analytic velocity at simulated time t (seconds), with the
// vertical component pointing up. vy tends to -g/k.
func (p Physics) Velocity(speed, angle, t float64) (vx, vy float64) {
	decay := math.Exp(-p.Drag * t)
	vx = speed * math.Cos(angle) * decay
	vy = (speed*math.Sin(angle)+p.Gravity/p.Drag)*decay - p.Gravity/p.Drag
	return vx, vy
}

// TerminalVelocity is the vertical speed the drag settles to.
func (p Physics) TerminalVelocity() float64 {
	return -p.Gravity / p.Drag
}
