package entity

import (
	"snake-torus/game/types"
)

// Snake is the ordered body of the snake, tail first and head last.
//
// Segments live in a ring buffer whose capacity is fixed when the snake is
// created, so moving (push head, pop tail) never reallocates. An occupancy
// bitmap indexed by cell keeps Contains constant time.
type Snake struct {
	grid     types.Grid
	body     []types.Point
	occupied []bool
	start    int // index of the tail in body
	length   int
}

// NewSnake creates a snake on grid from segments ordered tail to head.
// Segments must be in bounds and distinct; the caller validates them.
func NewSnake(grid types.Grid, segments []types.Point) *Snake {
	s := &Snake{
		grid:     grid,
		body:     make([]types.Point, grid.Cells()),
		occupied: make([]bool, grid.Cells()),
	}
	for _, p := range segments {
		s.Push(p)
	}
	return s
}

// Push appends a new head. Pushing onto a full buffer panics.
func (s *Snake) Push(head types.Point) {
	if s.length == len(s.body) {
		panic("entity: snake longer than grid")
	}
	s.body[(s.start+s.length)%len(s.body)] = head
	s.occupied[s.cell(head)] = true
	s.length++
}

// PopTail removes and returns the oldest segment.
func (s *Snake) PopTail() types.Point {
	if s.length == 0 {
		panic("entity: pop from empty snake")
	}
	tail := s.body[s.start]
	s.occupied[s.cell(tail)] = false
	s.start = (s.start + 1) % len(s.body)
	s.length--
	return tail
}

// Head returns the newest segment.
func (s *Snake) Head() types.Point {
	return s.At(s.length - 1)
}

// Tail returns the oldest segment.
func (s *Snake) Tail() types.Point {
	return s.At(0)
}

// At returns the i-th segment counting from the tail.
func (s *Snake) At(i int) types.Point {
	if i < 0 || i >= s.length {
		panic("entity: segment index out of range")
	}
	return s.body[(s.start+i)%len(s.body)]
}

func (s *Snake) Len() int {
	return s.length
}

// Contains reports whether any segment sits on p.
func (s *Snake) Contains(p types.Point) bool {
	if !s.grid.Contains(p) {
		return false
	}
	return s.occupied[s.cell(p)]
}

// Segments returns a copy of the body, tail first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, s.length)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

func (s *Snake) cell(p types.Point) int {
	return p.Row*s.grid.Cols + p.Col
}
