package game

import (
	"github.com/mzolotov/termsnake/internal/core"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	PrevScore  int
	HighScore  int
	SnakeLen   int
	Head       core.Point
	Heading    core.Direction
	Food       core.Point
	IntervalMs int64
	BoardSize  int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Score:      g.score,
		PrevScore:  g.prevScore,
		HighScore:  g.highScore,
		SnakeLen:   g.snake.Len(),
		Head:       g.snake.Head(),
		Heading:    g.snake.Heading(),
		Food:       g.food.Pos(),
		IntervalMs: g.interval.Milliseconds(),
		BoardSize:  g.board.Size(),
	}
}
