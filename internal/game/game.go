// Package game implements the Snake simulation: board, snake, food, and the
// fixed-tick state machine that drives them. It is pure logic over the core
// types; input arrives as abstract actions and output goes into a screen
// buffer, so the package never touches the terminal, the clock, or the
// filesystem.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mzolotov/termsnake/internal/core"
)

// Phase is the game loop's state machine position.
type Phase int

const (
	// PhaseAwaitingInput renders the board each tick but holds the snake
	// still until the first directional key, so the player cannot die
	// before reacting.
	PhaseAwaitingInput Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// minBoardSize is the smallest playable square board.
const minBoardSize = 10

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Config holds the gameplay tuning knobs.
type Config struct {
	BoardSize    int           // board edge in cells; 0 derives it from the screen
	TickInitial  time.Duration // tick interval at session start
	TickStep     time.Duration // interval reduction per speedup
	TickMin      time.Duration // fastest allowed interval
	SpeedupEvery int           // foods eaten per speedup
	Progression  bool          // false freezes the interval at TickInitial
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		TickInitial:  140 * time.Millisecond,
		TickStep:     8 * time.Millisecond,
		TickMin:      30 * time.Millisecond,
		SpeedupEvery: 4,
		Progression:  true,
	}
}

// FitBoardSize computes the largest square board that fits a terminal of the
// given dimensions, leaving room for the HUD and rendering each cell two
// columns wide. Never smaller than minBoardSize.
func FitBoardSize(cols, rows int) int {
	size := core.Min((cols-2)/2, rows-hudHeight-4)
	return core.Max(size, minBoardSize)
}

// Game owns one Snake, one Food, one Board, the score state, and the tick
// interval, and orchestrates the input → update → render cycle. All state is
// owned exclusively by the caller's single update loop; nothing here is safe
// for concurrent use.
type Game struct {
	cfg   Config
	rng   *rand.Rand
	board *Board
	snake *Snake
	food  Food

	tick      uint64
	phase     Phase
	score     int
	prevScore int // score at the last game over
	highScore int
	foodEaten int // foods since session start, drives the speedup cadence
	interval  time.Duration
}

// New creates a game sized once from the runtime config. The board is fixed
// for the process lifetime; only Snake and Food are recreated on restart.
func New(cfg Config, rc core.RuntimeConfig) *Game {
	if cfg.TickInitial <= 0 {
		cfg = DefaultConfig()
	}
	if cfg.SpeedupEvery <= 0 {
		cfg.SpeedupEvery = DefaultConfig().SpeedupEvery
	}

	size := cfg.BoardSize
	if size < minBoardSize {
		size = FitBoardSize(rc.ScreenW, rc.ScreenH)
	}

	g := &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(rc.Seed)),
		board:    NewBoard(size),
		phase:    PhaseAwaitingInput,
		interval: cfg.TickInitial,
	}
	g.snake = NewSnake(g.center(), core.DirNone)
	g.food.Spawn(size, size, g.snake, g.rng)
	return g
}

// SeedScores installs the persisted previous and high scores loaded at
// process start.
func (g *Game) SeedScores(prev, high int) {
	g.prevScore = prev
	g.highScore = high
}

func (g *Game) center() core.Point {
	return core.Point{X: g.board.Size() / 2, Y: g.board.Size() / 2}
}

// Step advances the simulation by one tick. Within a tick, at most one
// direction change is applied before the move that consumes it; quit is the
// platform's concern and never reaches here.
func (g *Game) Step(in core.InputFrame) core.GameState {
	g.tick++

	switch g.phase {
	case PhaseGameOver:
		// Simulation is frozen; only restart is meaningful. Pause is a
		// deliberate no-op here.
		if in.Has(core.ActionRestart) {
			g.restart()
		}

	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = PhaseRunning
		}

	case PhaseAwaitingInput:
		// Only an accepted direction ends the lockout; a reversal into
		// the body (the tail extends left, so Left) keeps the snake held.
		if d := in.Direction(); d != core.DirNone && g.snake.SetDirection(d) {
			g.phase = PhaseRunning
			g.advance()
		}

	case PhaseRunning:
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		if d := in.Direction(); d != core.DirNone {
			g.snake.SetDirection(d)
		}
		g.advance()
	}

	return g.State()
}

// advance moves the snake one cell and resolves collisions and food.
func (g *Game) advance() {
	head := g.snake.Move(false)

	if !g.board.Inside(head) || g.snake.SelfCollides() {
		g.endSession()
		return
	}

	if head == g.food.Pos() {
		g.snake.Grow()
		g.score++
		if g.score > g.highScore {
			g.highScore = g.score
		}
		g.foodEaten++
		if g.cfg.Progression && g.foodEaten%g.cfg.SpeedupEvery == 0 {
			g.interval -= g.cfg.TickStep
			if g.interval < g.cfg.TickMin {
				g.interval = g.cfg.TickMin
			}
		}
		g.food.Spawn(g.board.Size(), g.board.Size(), g.snake, g.rng)
	}
}

// endSession records the final score and freezes the simulation. Collisions
// are expected state transitions, never errors.
func (g *Game) endSession() {
	g.prevScore = g.score
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.phase = PhaseGameOver
}

// restart replaces the Snake and Food values wholesale, resets score and
// tick interval, and resumes immediately heading right: the pre-input
// lockout applies only to the first session.
func (g *Game) restart() {
	g.snake = NewSnake(g.center(), core.DirRight)
	g.food.Spawn(g.board.Size(), g.board.Size(), g.snake, g.rng)
	g.score = 0
	g.foodEaten = 0
	g.interval = g.cfg.TickInitial
	g.phase = PhaseRunning
}

// TickInterval returns the current end-of-tick sleep duration.
func (g *Game) TickInterval() time.Duration {
	return g.interval
}

// Phase returns the state machine position.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.score
}

// PrevScore returns the score at the last game over.
func (g *Game) PrevScore() int {
	return g.prevScore
}

// HighScore returns the best score seen this process, including the
// persisted value seeded at startup.
func (g *Game) HighScore() int {
	return g.highScore
}

// State reports the status the platform needs after each tick.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Render draws the HUD, board, and any phase overlay into dst. It mutates
// nothing; rendering twice with no intervening Step produces identical
// buffers.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	boardW := g.board.Size() * 2
	offsetX := core.Max((dst.Width()-boardW)/2, 0)
	offsetY := hudHeight

	g.board.Rebuild(g.snake, &g.food)
	g.board.Draw(dst, offsetX, offsetY)

	switch g.phase {
	case PhaseAwaitingInput:
		g.renderOverlay(dst, "Ready", "Press a direction key to start")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseGameOver:
		g.renderOverlay(dst,
			"Game Over",
			fmt.Sprintf("Final: %d   High: %d", g.score, g.highScore),
			"Press R to restart, Q to quit")
	}
}

// renderHUD draws the status line and separator above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, "SNAKE", core.ColorBrightCyan)
	hud := fmt.Sprintf("  Score: %d   Prev: %d   High: %d", g.score, g.prevScore, g.highScore)
	dst.DrawText(6, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered box with the given lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	w, h := dst.Width(), dst.Height()

	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, line)
	}
}
