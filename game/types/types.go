package types

import "fmt"

// Grid represents the game grid dimensions
type Grid struct {
	Rows int
	Cols int
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Valid reports whether both dimensions are positive.
func (g Grid) Valid() bool {
	return g.Rows > 0 && g.Cols > 0
}

// Contains reports whether p lies inside the grid without wrapping.
func (g Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Wrap folds p back onto the grid. The grid is a torus, so leaving one edge
// re-enters on the opposite one.
func (g Grid) Wrap(p Point) Point {
	return Point{
		Row: ((p.Row % g.Rows) + g.Rows) % g.Rows,
		Col: ((p.Col % g.Cols) + g.Cols) % g.Cols,
	}
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Cols)
}

// Point is a (row, col) grid coordinate.
type Point struct {
	Row, Col int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is the pending movement applied on the next tick.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in clockwise order.
var Directions = [...]Direction{Up, Right, Down, Left}

// Vector converts a Direction into a (row, col) step.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{Row: -1, Col: 0}
	case Right:
		return Point{Row: 0, Col: 1}
	case Down:
		return Point{Row: 1, Col: 0}
	case Left:
		return Point{Row: 0, Col: -1}
	}
	panic(fmt.Sprintf("types: invalid direction %d", int(d)))
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	panic(fmt.Sprintf("types: invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// WinState is the outcome of a game. Once it leaves Pending it never changes.
type WinState int

const (
	Pending WinState = iota
	Win
	Loss
)

// Over reports whether the game has reached a terminal state.
func (s WinState) Over() bool {
	return s != Pending
}

func (s WinState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return fmt.Sprintf("WinState(%d)", int(s))
}
