package game

import "github.com/slithertui/slither/internal/core"

// Snapshot captures the observable simulation state for determinism
// checks and replay verification.
type Snapshot struct {
	Score     uint16
	FoodEaten uint16
	SnakeLen  int
	Head      core.Position
	Dir       core.Direction
	Food      core.Position
	State     core.GameState
}

// Snapshot returns the current state as a comparable value.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Score:     g.score,
		FoodEaten: g.foodEat,
		SnakeLen:  g.length,
		Head:      g.segments[0],
		Dir:       g.dir,
		Food:      g.food,
		State:     g.state,
	}
}
