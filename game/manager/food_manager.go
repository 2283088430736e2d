package manager

import (
	"golang.org/x/exp/rand"

	"snake-torus/game/entity"
	"snake-torus/game/types"
)

// maxRandomDraws bounds the rejection sampling in Place before it falls back
// to scanning for free cells.
const maxRandomDraws = 32

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Place picks a food cell uniformly among the cells the snake does not
// occupy. It returns false only when the snake covers the whole grid.
func (fm *FoodManager) Place(snake *entity.Snake) (types.Point, bool) {
	for i := 0; i < maxRandomDraws; i++ {
		food := types.Point{
			Row: fm.rng.Intn(fm.grid.Rows),
			Col: fm.rng.Intn(fm.grid.Cols),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	// Crowded board: choose directly from what is left.
	free := fm.grid.Cells() - snake.Len()
	if free <= 0 {
		return types.Point{}, false
	}
	pick := fm.rng.Intn(free)
	for row := 0; row < fm.grid.Rows; row++ {
		for col := 0; col < fm.grid.Cols; col++ {
			p := types.Point{Row: row, Col: col}
			if snake.Contains(p) {
				continue
			}
			if pick == 0 {
				return p, true
			}
			pick--
		}
	}
	return types.Point{}, false
}
