package window

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/matt-g-everett/fireworks/show"
)

var modeKeys = map[ebiten.Key]int{
	ebiten.KeyDigit1: 1,
	ebiten.KeyDigit2: 2,
	ebiten.KeyDigit3: 3,
}

// Game implements ebiten.Game. Clicks trigger bursts in Update and the
// scheduler's frames run inside Draw, both on ebiten's game goroutine.
type Game struct {
	scheduler *show.Scheduler
	surface   *Surface
	frames    *show.Manual
	status    string

	width, height int
}

// NewGame creates a Game whose scheduler is built by factory.
func NewGame(factory show.Factory) *Game {
	g := new(Game)
	g.surface = new(Surface)
	g.frames = new(show.Manual)
	g.scheduler = factory(g.surface, g.frames, g.setStatus)
	return g
}

func (g *Game) setStatus(s string) {
	g.status = s
}

// Update handles input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, mode := range modeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.scheduler.SetMode(mode)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.scheduler.Trigger(float64(x), float64(y))
	}
	return nil
}

// Draw runs the pending animation frame, if any, onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.frames.RunFrame()
	ebitenutil.DebugPrint(screen, g.status)
}

// Layout follows the window size so the surface always fills the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		log.Printf("Surface %dx%d", g.width, g.height)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(title string, width, height int, factory show.Factory) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(factory)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
