package game

import (
	"math/rand"

	"github.com/mzolotov/termsnake/internal/core"
)

// Food owns a single grid cell position.
type Food struct {
	pos core.Point
}

// Pos returns the food's current position.
func (f *Food) Pos() core.Point {
	return f.pos
}

// Spawn picks a uniformly random position strictly inside the playable
// interior (excluding the border ring) that is not occupied by any snake
// cell, by re-sampling until a free cell is hit. Termination is guaranteed
// whenever at least one interior cell is free; the caller must not invoke
// this with the interior fully occupied.
//
// The invariant is only checked at spawn time: the snake may later pass
// under the food cell, which is exactly how consumption is detected.
func (f *Food) Spawn(width, height int, snake *Snake, rng *rand.Rand) {
	for {
		p := core.Point{
			X: 1 + rng.Intn(width-2),
			Y: 1 + rng.Intn(height-2),
		}
		if !snake.Occupies(p) {
			f.pos = p
			return
		}
	}
}
