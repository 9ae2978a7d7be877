package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/matt-g-everett/fireworks/show"
)

// App runs a show in a terminal. Events from tcell are posted onto the
// ticker goroutine, so the scheduler is only ever touched from there.
type App struct {
	screen    tcell.Screen
	raster    *Raster
	ticker    *show.Ticker
	scheduler *show.Scheduler
	status    string
	pressed   bool
	cancel    context.CancelFunc
}

// NewApp initialises the terminal screen and the scheduler built by factory.
func NewApp(frameRate float64, factory show.Factory) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	a := new(App)
	a.screen = screen
	a.raster = NewRaster(screen.Size())
	a.ticker = show.NewTicker(time.Duration(float64(time.Second) / frameRate))
	a.ticker.AfterFrame = a.present
	a.scheduler = factory(a.raster, a.ticker, a.setStatus)
	return a, nil
}

func (a *App) setStatus(s string) {
	a.status = s
}

// Run blocks until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Fini()

	ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()

	go a.poll()

	log.Printf("Terminal %dx%d cells", a.raster.cols, a.raster.rows)
	err := a.ticker.Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}

func (a *App) poll() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.ticker.Post(func() { a.handle(ev) }) {
			return
		}
	}
}

func (a *App) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			a.cancel()
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q', 'Q':
				a.cancel()
			case '1', '2', '3':
				a.scheduler.SetMode(int(r - '0'))
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.pressed {
			x, y := CellCentre(ev.Position())
			a.scheduler.Trigger(x, y)
		}
		a.pressed = down
	case *tcell.EventResize:
		a.raster.Resize(a.screen.Size())
		a.screen.Sync()
	}
}

// present copies the raster to the screen with the status line on top.
func (a *App) present() {
	for row := 0; row < a.raster.rows; row++ {
		for col := 0; col < a.raster.cols; col++ {
			r, g, b := a.raster.At(col, row).RGB255()
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			a.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range a.status {
		if i >= a.raster.cols {
			break
		}
		a.screen.SetContent(i, 0, ch, nil, text)
	}
	a.screen.Show()
}
