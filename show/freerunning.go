package show

// FreeRunning reveals one more point per frame however much time has passed,
// so bursts play as fast as frames are produced.
type FreeRunning struct{}

// Name implements Discipline.
func (FreeRunning) Name() string {
	return PlaybackFreeRunning
}

// View shows every revealed segment behind the cursor and the cursor point
// itself. A bundle past its last point shows nothing.
func (FreeRunning) View(b *Bundle, now float64) View {
	if b.Done() {
		return View{Style: Fading}
	}
	return View{
		Style:      Fading,
		TrailBegin: 0,
		TrailEnd:   b.Cursor,
		Heads:      []int{b.Cursor},
	}
}

// Target implements Discipline.
func (FreeRunning) Target(b *Bundle, now float64) int {
	return b.Cursor + 1
}
