package show

// A Mode is one burst style: how many particles each ring has, which
// elevations (degrees) get a ring, and how the bursts are played back.
type Mode struct {
	ID         int
	Particles  int
	Elevations []float64
	Discipline Discipline
}

// Bundles is the number of bundles one trigger spawns.
func (m Mode) Bundles() int {
	return m.Particles * len(m.Elevations)
}

// DefaultModes returns the stock modes: a small flat burst, a dense flat
// burst played against the clock, and a layered pseudo-3D burst.
func DefaultModes(intervalMs float64, settings Settings) []Mode {
	return []Mode{
		{ID: 1, Particles: 20, Elevations: []float64{0}, Discipline: FreeRunning{}},
		{ID: 2, Particles: 60, Elevations: []float64{0},
			Discipline: NewFixedInterval(intervalMs, settings.HighlightDurationMs, settings.TrailDurationMs)},
		{ID: 3, Particles: 30, Elevations: []float64{85, 75, 60, 45, 25, 0}, Discipline: FreeRunning{}},
	}
}
