package platform

import (
	"github.com/pkg/errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-torus/game/types"
	"snake-torus/input"
	"snake-torus/ui"
)

// RaylibWindow is a desktop window. Drawing between Clear and Present is
// wrapped in a raylib BeginDrawing/EndDrawing pair.
type RaylibWindow struct {
	width, height int
	drawing       bool
}

// OpenRaylib opens a width x height window titled title.
func OpenRaylib(width, height int, title string) (*RaylibWindow, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window could not be created")
	}
	rl.SetExitKey(rl.KeyNull) // Escape is handled in Poll
	return &RaylibWindow{width: width, height: height}, nil
}

func (w *RaylibWindow) Size() (int, int) {
	return w.width, w.height
}

func (w *RaylibWindow) begin() {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
}

func (w *RaylibWindow) Clear(c ui.Color) {
	w.begin()
	rl.ClearBackground(toRaylib(c))
}

func (w *RaylibWindow) FillRect(r ui.Rect, c ui.Color) {
	w.begin()
	rl.DrawRectangleRec(rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}, toRaylib(c))
}

func (w *RaylibWindow) DrawText(text string, cx, cy, size float32, c ui.Color) {
	w.begin()
	fontSize := int32(size)
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text, int32(cx)-textWidth/2, int32(cy)-fontSize/2, fontSize, toRaylib(c))
}

func (w *RaylibWindow) Present() {
	w.begin()
	rl.EndDrawing()
	w.drawing = false
}

// Poll drains raylib's key queue. raylib refreshes that queue in EndDrawing,
// so keys pressed during a tick show up on the next Poll.
func (w *RaylibWindow) Poll() []input.Event {
	var events []input.Event
	if rl.WindowShouldClose() {
		events = append(events, input.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := raylibKey(key); ok {
			events = append(events, ev)
		}
	}
	return events
}

func (w *RaylibWindow) Close() {
	rl.CloseWindow()
}

func raylibKey(key int32) (input.Event, bool) {
	switch key {
	case rl.KeyUp:
		return input.MoveEvent(types.Up), true
	case rl.KeyDown:
		return input.MoveEvent(types.Down), true
	case rl.KeyLeft:
		return input.MoveEvent(types.Left), true
	case rl.KeyRight:
		return input.MoveEvent(types.Right), true
	case rl.KeyEscape:
		return input.QuitEvent(), true
	}
	// Letter keys arrive as their upper-case ASCII code.
	if key >= rl.KeyA && key <= rl.KeyZ {
		return input.FromRune(rune(key))
	}
	return input.Event{}, false
}

func toRaylib(c ui.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
