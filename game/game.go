// Package game holds the snake simulation: a single snake on a toroidal grid,
// one food cell, and the tick rule that moves, grows, and ends the game.
package game

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-torus/game/entity"
	"snake-torus/game/manager"
	"snake-torus/game/types"
)

var (
	// ErrInvalidGrid is returned for grids that cannot hold a starting snake.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrInvalidSnake is returned when a custom starting snake or food is rejected.
	ErrInvalidSnake = errors.New("invalid snake")
)

// InitialLength is the length of the default starting snake.
const InitialLength = 2

type GameState struct {
	grid      types.Grid
	snake     *entity.Snake
	food      types.Point
	direction types.Direction
	winState  types.WinState
	steps     int
	startLen  int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

type options struct {
	rng       *rand.Rand
	segments  []types.Point
	direction types.Direction
	food      *types.Point
}

// Option customizes a new GameState.
type Option func(*options)

// WithSeed makes food placement reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithSnake replaces the default starting snake. Segments run tail to head.
func WithSnake(segments []types.Point, dir types.Direction) Option {
	return func(o *options) {
		o.segments = append([]types.Point(nil), segments...)
		o.direction = dir
	}
}

// WithFood places the first food at p instead of a random cell.
func WithFood(p types.Point) Option {
	return func(o *options) { o.food = &p }
}

// New creates a game on grid with the snake at (0,0),(0,1) heading right.
func New(grid types.Grid, opts ...Option) (*GameState, error) {
	if !grid.Valid() {
		return nil, errors.Wrapf(ErrInvalidGrid, "dimensions %s must be positive", grid)
	}
	if grid.Cells() < InitialLength {
		return nil, errors.Wrapf(ErrInvalidGrid, "%s has fewer than %d cells", grid, InitialLength)
	}

	segments, dir := defaultSnake(grid)
	o := options{
		segments:  segments,
		direction: dir,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if err := validateSegments(grid, o.segments); err != nil {
		return nil, err
	}

	g := &GameState{
		grid:         grid,
		snake:        entity.NewSnake(grid, o.segments),
		direction:    o.direction,
		winState:     types.Pending,
		startLen:     len(o.segments),
		collisionMgr: manager.NewCollisionManager(grid),
	}
	g.foodMgr = manager.NewFoodManager(grid, o.rng, g.collisionMgr)

	if g.snake.Len() == grid.Cells() {
		g.winState = types.Win
		return g, nil
	}

	if o.food != nil {
		if !g.collisionMgr.ValidateSpawnPosition(*o.food, g.snake) {
			return nil, errors.Wrapf(ErrInvalidSnake, "food %s is off the grid or under the snake", *o.food)
		}
		g.food = *o.food
	} else {
		g.placeFood()
	}
	return g, nil
}

// defaultSnake returns two adjacent cells in the first row heading right, or
// in the first column heading down when the grid is a single column wide.
func defaultSnake(grid types.Grid) ([]types.Point, types.Direction) {
	if grid.Cols >= InitialLength {
		return []types.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, types.Right
	}
	return []types.Point{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, types.Down
}

func validateSegments(grid types.Grid, segments []types.Point) error {
	if len(segments) == 0 {
		return errors.Wrap(ErrInvalidSnake, "no segments")
	}
	seen := make(map[types.Point]bool, len(segments))
	for _, p := range segments {
		if !grid.Contains(p) {
			return errors.Wrapf(ErrInvalidSnake, "segment %s outside %s grid", p, grid)
		}
		if seen[p] {
			return errors.Wrapf(ErrInvalidSnake, "segment %s repeated", p)
		}
		seen[p] = true
	}
	return nil
}

// Update advances the game by one tick. It does nothing once the game is over.
func (g *GameState) Update() {
	if g.winState.Over() {
		return
	}

	newHead := g.collisionMgr.NextHead(g.snake, g.direction)
	if g.collisionMgr.Check(newHead, g.snake) != manager.NoCollision {
		g.winState = types.Loss
		return
	}

	g.snake.Push(newHead)
	g.steps++

	ate := newHead == g.food
	if !ate {
		g.snake.PopTail()
	}

	if g.snake.Len() == g.grid.Cells() {
		g.winState = types.Win
		return
	}

	if ate {
		g.placeFood()
	}
}

func (g *GameState) placeFood() {
	food, ok := g.foodMgr.Place(g.snake)
	if !ok {
		// Unreachable while Pending: a full board is a win.
		panic("game: no free cell for food")
	}
	g.food = food
}

// SetDirection sets the direction applied on the next Update. Reversal is
// not checked here; see Controller.
func (g *GameState) SetDirection(d types.Direction) {
	g.direction = d
}

func (g *GameState) Direction() types.Direction {
	return g.direction
}

func (g *GameState) WinState() types.WinState {
	return g.winState
}

func (g *GameState) Grid() types.Grid {
	return g.grid
}

func (g *GameState) Food() types.Point {
	return g.food
}

func (g *GameState) Head() types.Point {
	return g.snake.Head()
}

// Snake returns a copy of the body, tail first.
func (g *GameState) Snake() []types.Point {
	return g.snake.Segments()
}

// Len returns the number of snake segments.
func (g *GameState) Len() int {
	return g.snake.Len()
}

// Score is the number of food cells eaten.
func (g *GameState) Score() int {
	return g.snake.Len() - g.startLen
}

// Steps counts successful moves.
func (g *GameState) Steps() int {
	return g.steps
}
