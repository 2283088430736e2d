package game

import "snake-torus/game/types"

// Accept reports whether the snake may turn to next while travelling in
// current. Only a direct reversal is refused.
func Accept(next, current types.Direction) bool {
	return next != current.Opposite()
}

// Controller gates direction changes between input and a GameState: at most
// one change is accepted per tick, and never a reversal.
type Controller struct {
	state   *GameState
	changed bool
}

func NewController(state *GameState) *Controller {
	return &Controller{state: state}
}

// BeginTick opens the budget for one direction change.
func (c *Controller) BeginTick() {
	c.changed = false
}

// Propose applies d if no change was accepted yet this tick and d does not
// reverse the current direction.
func (c *Controller) Propose(d types.Direction) bool {
	if c.changed || !Accept(d, c.state.Direction()) {
		return false
	}
	c.state.SetDirection(d)
	c.changed = true
	return true
}
