package manager

import (
	"snake-torus/game/entity"
	"snake-torus/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case SelfCollision:
		return "self"
	}
	return "unknown"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead returns where the head lands after one step in dir. The grid
// wraps, so there is no wall to hit.
func (cm *CollisionManager) NextHead(snake *entity.Snake, dir types.Direction) types.Point {
	return cm.grid.Wrap(snake.Head().Add(dir.Vector()))
}

// Check classifies a move of the head onto pos. It must run before the snake
// is mutated: the current tail still counts as occupied, so a two-segment
// snake turning into itself loses.
func (cm *CollisionManager) Check(pos types.Point, snake *entity.Snake) CollisionType {
	if snake.Contains(pos) {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return cm.grid.Contains(pos) && !snake.Contains(pos)
}
