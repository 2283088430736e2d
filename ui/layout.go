package ui

import (
	"github.com/pkg/errors"

	"snake-torus/game/types"
)

// ErrLayout is returned when the window cannot fit the grid.
var ErrLayout = errors.New("layout does not fit window")

// Palette holds the four colours a frame is drawn with.
type Palette struct {
	Grid  Color `json:"grid"`
	Food  Color `json:"food"`
	Snake Color `json:"snake"`
	Head  Color `json:"head"`
}

// LayoutConfig is the static description of the window.
type LayoutConfig struct {
	Width   int
	Height  int
	Border  float32
	Palette Palette
}

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H float32
}

// Layout is the pixel geometry of the grid, computed once.
type Layout struct {
	grid    types.Grid
	border  float32
	cell    float32
	offsetX float32
	offsetY float32
}

// NewLayout fits grid into a width x height window with square cells
// separated by border pixels, centring whatever space is left over.
func NewLayout(width, height int, border float32, grid types.Grid) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, errors.Wrapf(ErrLayout, "window %dx%d", width, height)
	}
	if !grid.Valid() {
		return Layout{}, errors.Wrapf(ErrLayout, "grid %s", grid)
	}
	if border < 0 {
		return Layout{}, errors.Wrapf(ErrLayout, "negative border %v", border)
	}

	rows, cols := float32(grid.Rows), float32(grid.Cols)
	ratio := min(float32(width)/cols, float32(height)/rows)

	cellW := (cols*ratio - border*(cols+1)) / cols
	cellH := (rows*ratio - border*(rows+1)) / rows
	cell := min(cellW, cellH)
	if cell <= 0 {
		return Layout{}, errors.Wrapf(ErrLayout, "border %v leaves no room for %s cells in %dx%d", border, grid, width, height)
	}

	totalW := cols*cell + (cols+1)*border
	totalH := rows*cell + (rows+1)*border
	return Layout{
		grid:    grid,
		border:  border,
		cell:    cell,
		offsetX: (float32(width) - totalW) / 2,
		offsetY: (float32(height) - totalH) / 2,
	}, nil
}

// CellSize returns the side of one square cell in pixels.
func (l Layout) CellSize() float32 {
	return l.cell
}

// CellRect returns where cell p is drawn. Columns run along x, rows along y.
func (l Layout) CellRect(p types.Point) Rect {
	return Rect{
		X: l.offsetX + l.border + float32(p.Col)*(l.cell+l.border),
		Y: l.offsetY + l.border + float32(p.Row)*(l.cell+l.border),
		W: l.cell,
		H: l.cell,
	}
}

// Bounds returns the rectangle covering the whole grid block.
func (l Layout) Bounds() Rect {
	return Rect{
		X: l.offsetX,
		Y: l.offsetY,
		W: float32(l.grid.Cols)*l.cell + float32(l.grid.Cols+1)*l.border,
		H: float32(l.grid.Rows)*l.cell + float32(l.grid.Rows+1)*l.border,
	}
}
