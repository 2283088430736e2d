package ui

import (
	"fmt"

	"snake-torus/game/types"
)

// Surface is the display the renderer draws on.
type Surface interface {
	Clear(c Color)
	FillRect(r Rect, c Color)
	Present()
}

// TextSurface is a Surface that can also draw a line of text centred on
// (cx, cy). Backends without text support only implement Surface.
type TextSurface interface {
	Surface
	DrawText(text string, cx, cy, size float32, c Color)
}

// State is the read-only view of a game the renderer needs.
type State interface {
	Grid() types.Grid
	Food() types.Point
	Snake() []types.Point
	WinState() types.WinState
	Score() int
}

type Renderer struct {
	state   State
	layout  Layout
	palette Palette
	width   int
	height  int
}

// NewRenderer prepares a renderer for state. The layout is derived from the
// game's grid and cfg once and reused for every frame.
func NewRenderer(state State, cfg LayoutConfig) (*Renderer, error) {
	layout, err := NewLayout(cfg.Width, cfg.Height, cfg.Border, state.Grid())
	if err != nil {
		return nil, err
	}
	return &Renderer{
		state:   state,
		layout:  layout,
		palette: cfg.Palette,
		width:   cfg.Width,
		height:  cfg.Height,
	}, nil
}

func (r *Renderer) Layout() Layout {
	return r.layout
}

// Draw paints one frame of the current state and presents it.
func (r *Renderer) Draw(s Surface) {
	s.Clear(Black)

	grid := r.state.Grid()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			s.FillRect(r.layout.CellRect(types.Point{Row: row, Col: col}), r.palette.Grid)
		}
	}

	s.FillRect(r.layout.CellRect(r.state.Food()), r.palette.Food)

	body := r.state.Snake()
	for i, p := range body {
		s.FillRect(r.layout.CellRect(p), Gradient(r.palette.Snake, r.palette.Head, i, len(body)))
	}

	if ts, ok := s.(TextSurface); ok {
		r.drawBanner(ts)
	}

	s.Present()
}

func (r *Renderer) drawBanner(s TextSurface) {
	var text string
	switch r.state.WinState() {
	case types.Pending:
		return
	case types.Win:
		text = fmt.Sprintf("YOU WIN - score %d", r.state.Score())
	case types.Loss:
		text = fmt.Sprintf("GAME OVER - score %d", r.state.Score())
	default:
		panic(fmt.Sprintf("ui: unexpected win state %v", r.state.WinState()))
	}
	size := max(float32(r.height)/20, 10)
	s.DrawText(text, float32(r.width)/2, float32(r.height)/2, size, White)
}
