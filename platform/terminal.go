package platform

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"snake-torus/game/types"
	"snake-torus/input"
	"snake-torus/ui"
)

// terminalPixelCols is how many character columns make up one pixel, which
// keeps cells roughly square in a typical terminal font.
const terminalPixelCols = 2

// TerminalWindow draws into a terminal. One pixel is two character cells
// side by side; FillRect paints every pixel whose centre lies in the rect.
type TerminalWindow struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// OpenTerminal takes over the terminal until Close.
func OpenTerminal() (*TerminalWindow, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "terminal")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "terminal init")
	}
	return newTerminalWindow(screen), nil
}

func newTerminalWindow(screen tcell.Screen) *TerminalWindow {
	screen.HideCursor()
	w := &TerminalWindow{
		screen: screen,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
	}
	go w.readEvents()
	return w
}

// readEvents only forwards events; all handling happens in Poll on the loop
// goroutine.
func (w *TerminalWindow) readEvents() {
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case w.events <- ev:
		case <-w.quit:
			return
		}
	}
}

// Size reports the drawable area in pixels.
func (w *TerminalWindow) Size() (int, int) {
	cols, rows := w.screen.Size()
	return cols / terminalPixelCols, rows
}

func (w *TerminalWindow) Clear(c ui.Color) {
	w.screen.Fill(' ', background(c))
}

func (w *TerminalWindow) FillRect(r ui.Rect, c ui.Color) {
	style := background(c)
	x0, x1 := pixelSpan(r.X, r.W)
	y0, y1 := pixelSpan(r.Y, r.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			for i := 0; i < terminalPixelCols; i++ {
				w.screen.SetContent(x*terminalPixelCols+i, y, ' ', nil, style)
			}
		}
	}
}

// pixelSpan returns the half-open range of pixels whose centre lies in
// [start, start+length).
func pixelSpan(start, length float32) (int, int) {
	first := int(math.Ceil(float64(start) - 0.5))
	end := int(math.Ceil(float64(start+length) - 0.5))
	return first, end
}

func (w *TerminalWindow) DrawText(text string, cx, cy, size float32, c ui.Color) {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorBlack).
		Bold(true)
	runes := []rune(text)
	x := int(cx)*terminalPixelCols - len(runes)/2
	y := int(cy)
	for i, r := range runes {
		w.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (w *TerminalWindow) Present() {
	w.screen.Show()
}

func (w *TerminalWindow) Poll() []input.Event {
	var events []input.Event
	for {
		select {
		case ev := <-w.events:
			if e, ok := w.translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

func (w *TerminalWindow) translate(ev tcell.Event) (input.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return input.MoveEvent(types.Up), true
		case tcell.KeyDown:
			return input.MoveEvent(types.Down), true
		case tcell.KeyLeft:
			return input.MoveEvent(types.Left), true
		case tcell.KeyRight:
			return input.MoveEvent(types.Right), true
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return input.QuitEvent(), true
		case tcell.KeyRune:
			return input.FromRune(ev.Rune())
		}
	case *tcell.EventResize:
		w.screen.Sync()
	}
	return input.Event{}, false
}

func (w *TerminalWindow) Close() {
	close(w.quit)
	w.screen.Fini()
}

func background(c ui.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
