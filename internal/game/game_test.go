package game

import (
	"strings"
	"testing"
	"time"

	"github.com/mzolotov/termsnake/internal/core"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BoardSize = 10
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed}
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestAwaitingInputHoldsSnakeStill(t *testing.T) {
	g := New(testConfig(), testRuntime(1))

	start := g.snake.Head()
	empty := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}

	if g.Phase() != PhaseAwaitingInput {
		t.Errorf("Phase() = %v, expected awaiting_input", g.Phase())
	}
	if g.snake.Head() != start {
		t.Errorf("snake moved before first input: %v -> %v", start, g.snake.Head())
	}
}

func TestFirstInputStartsMovement(t *testing.T) {
	g := New(testConfig(), testRuntime(1))
	start := g.snake.Head()

	g.Step(frameWith(core.ActionUp))

	if g.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v, expected running", g.Phase())
	}
	if g.snake.Head() != (core.Point{X: start.X, Y: start.Y - 1}) {
		t.Errorf("head = %v, expected one cell up from %v", g.snake.Head(), start)
	}
}

func TestFirstInputLeftIsHarmless(t *testing.T) {
	// The snake starts facing right with its tail extending left. Left as
	// the very first input points straight into the body; it must neither
	// end the session nor start movement.
	g := New(testConfig(), testRuntime(1))
	start := g.snake.Head()

	g.Step(frameWith(core.ActionLeft))

	if g.Phase() != PhaseAwaitingInput {
		t.Fatalf("Phase() = %v, expected awaiting_input after rejected left", g.Phase())
	}
	if g.snake.Head() != start {
		t.Errorf("head = %v, expected unchanged %v", g.snake.Head(), start)
	}
	if g.snake.SelfCollides() {
		t.Error("first-input left folded the head into the body")
	}

	// The session still starts normally on the next valid direction.
	g.Step(frameWith(core.ActionUp))
	if g.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v, expected running after up", g.Phase())
	}
	if g.snake.Head() != (core.Point{X: start.X, Y: start.Y - 1}) {
		t.Errorf("head = %v, expected one cell up from %v", g.snake.Head(), start)
	}
}

func TestTurnUpThenCoastScenario(t *testing.T) {
	// Board 10x10 (interior 8x8), snake centered length 3, first input
	// "up" then three ticks with no further input.
	g := New(testConfig(), testRuntime(2))
	g.food.pos = core.Point{X: 8, Y: 8} // out of the snake's path

	start := g.snake.Head()
	if start != (core.Point{X: 5, Y: 5}) {
		t.Fatalf("snake should start centered, head = %v", start)
	}

	g.Step(frameWith(core.ActionUp))
	postTurn := g.snake.Head()

	empty := core.NewInputFrame()
	for i := 0; i < 3; i++ {
		g.Step(empty)
	}

	if g.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v, expected running (no collision)", g.Phase())
	}
	expected := core.Point{X: postTurn.X, Y: postTurn.Y - 3}
	if g.snake.Head() != expected {
		t.Errorf("head = %v, expected %v", g.snake.Head(), expected)
	}
	if g.snake.Len() != 3 {
		t.Errorf("Len() = %d, expected tail trimmed to 3", g.snake.Len())
	}
}

func TestEatFoodScenario(t *testing.T) {
	g := New(testConfig(), testRuntime(3))
	g.Step(frameWith(core.ActionRight))

	// Food directly one cell ahead of the head
	head := g.snake.Head()
	g.food.pos = core.Point{X: head.X + 1, Y: head.Y}
	lenBefore := g.snake.Len()

	g.Step(core.NewInputFrame())

	if g.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", g.Score())
	}
	// Growth lands on the next move
	g.Step(core.NewInputFrame())
	if g.snake.Len() != lenBefore+1 {
		t.Errorf("Len() = %d, expected %d", g.snake.Len(), lenBefore+1)
	}

	// Fresh food position does not coincide with the body
	if g.snake.Occupies(g.food.Pos()) {
		t.Errorf("respawned food at %v overlaps the snake", g.food.Pos())
	}
}

func TestWallCollisionScenario(t *testing.T) {
	g := New(testConfig(), testRuntime(4))
	g.SeedScores(0, 2)
	g.food.pos = core.Point{X: 8, Y: 8}

	// Drive the snake into the left border
	g.snake = &Snake{
		body:    []core.Point{{X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5}},
		heading: core.DirLeft,
		pending: core.DirLeft,
	}
	g.phase = PhaseRunning
	g.score = 3
	g.highScore = 2

	empty := core.NewInputFrame()
	g.Step(empty) // head -> x=1, still inside
	if g.Phase() != PhaseRunning {
		t.Fatal("game ended one tick early")
	}

	g.Step(empty) // head -> x=0, border
	if g.Phase() != PhaseGameOver {
		t.Fatal("game should end the exact tick x reaches 0")
	}
	if g.PrevScore() != 3 {
		t.Errorf("PrevScore() = %d, expected 3", g.PrevScore())
	}
	if g.HighScore() != 3 {
		t.Errorf("HighScore() = %d, expected 3", g.HighScore())
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := New(testConfig(), testRuntime(5))
	g.food.pos = core.Point{X: 8, Y: 8}
	g.snake = &Snake{
		body: []core.Point{
			{X: 5, Y: 5},
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 6, Y: 4},
		},
		heading: core.DirRight,
		pending: core.DirRight,
	}
	g.phase = PhaseRunning

	g.Step(core.NewInputFrame())

	if g.Phase() != PhaseGameOver {
		t.Error("self collision should end the game the same tick")
	}
}

func TestReversalRequestIgnored(t *testing.T) {
	g := New(testConfig(), testRuntime(6))
	g.food.pos = core.Point{X: 8, Y: 8}
	g.Step(frameWith(core.ActionRight))

	head := g.snake.Head()
	g.Step(frameWith(core.ActionLeft))

	if g.Phase() != PhaseRunning {
		t.Fatal("reversal must not kill the snake")
	}
	if g.snake.Heading() != core.DirRight {
		t.Errorf("heading = %v, expected right", g.snake.Heading())
	}
	if g.snake.Head() != (core.Point{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head = %v, expected to continue right", g.snake.Head())
	}
}

func TestSpeedupCadence(t *testing.T) {
	cfg := testConfig()
	cfg.BoardSize = 20 // room for a straight feeding run
	g := New(cfg, testRuntime(7))
	g.Step(frameWith(core.ActionRight))

	if g.TickInterval() != cfg.TickInitial {
		t.Fatalf("TickInterval() = %v, expected %v", g.TickInterval(), cfg.TickInitial)
	}

	// Feed the snake by always placing food one cell ahead. Keep it on a
	// safe row and wrap around by turning before the wall would hit.
	feed := func(n int) {
		for i := 0; i < n; i++ {
			head := g.snake.Head()
			next := head.Translate(g.snake.Heading())
			if !g.board.Inside(next.Translate(g.snake.Heading())) {
				t.Fatal("test snake ran out of room")
			}
			g.food.pos = next
			g.Step(core.NewInputFrame())
			if g.Phase() != PhaseRunning {
				t.Fatalf("game over while feeding at food %d", i)
			}
		}
	}

	feed(3)
	if g.TickInterval() != cfg.TickInitial {
		t.Errorf("interval changed before the 4th food: %v", g.TickInterval())
	}

	feed(1)
	if g.TickInterval() != cfg.TickInitial-cfg.TickStep {
		t.Errorf("TickInterval() = %v, expected %v", g.TickInterval(), cfg.TickInitial-cfg.TickStep)
	}
}

func TestSpeedupFloor(t *testing.T) {
	cfg := testConfig()
	cfg.TickInitial = 40 * time.Millisecond
	cfg.TickStep = 8 * time.Millisecond
	cfg.TickMin = 30 * time.Millisecond
	cfg.SpeedupEvery = 1

	g := New(cfg, testRuntime(8))
	g.phase = PhaseRunning
	g.snake = NewSnake(core.Point{X: 5, Y: 5}, core.DirRight)

	for i := 0; i < 3; i++ {
		g.food.pos = g.snake.Head().Translate(core.DirRight)
		g.Step(core.NewInputFrame())
	}

	if g.TickInterval() != cfg.TickMin {
		t.Errorf("TickInterval() = %v, expected floor %v", g.TickInterval(), cfg.TickMin)
	}
}

func TestFixedProgressionKeepsInterval(t *testing.T) {
	cfg := testConfig()
	cfg.Progression = false
	cfg.SpeedupEvery = 1

	g := New(cfg, testRuntime(9))
	g.phase = PhaseRunning
	g.snake = NewSnake(core.Point{X: 5, Y: 5}, core.DirRight)

	g.food.pos = g.snake.Head().Translate(core.DirRight)
	g.Step(core.NewInputFrame())

	if g.TickInterval() != cfg.TickInitial {
		t.Errorf("TickInterval() = %v, expected unchanged %v", g.TickInterval(), cfg.TickInitial)
	}
}

func TestPauseToggle(t *testing.T) {
	g := New(testConfig(), testRuntime(10))
	g.food.pos = core.Point{X: 8, Y: 8}
	g.Step(frameWith(core.ActionRight))

	g.Step(frameWith(core.ActionPause))
	if g.Phase() != PhasePaused {
		t.Fatalf("Phase() = %v, expected paused", g.Phase())
	}

	// Direction input while paused does not move the snake
	head := g.snake.Head()
	g.Step(frameWith(core.ActionUp))
	if g.snake.Head() != head {
		t.Error("snake moved while paused")
	}

	g.Step(frameWith(core.ActionPause))
	if g.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running after unpause", g.Phase())
	}
}

func TestPauseIgnoredOutsideRunning(t *testing.T) {
	g := New(testConfig(), testRuntime(11))

	// Ignored while awaiting first input
	g.Step(frameWith(core.ActionPause))
	if g.Phase() != PhaseAwaitingInput {
		t.Errorf("Phase() = %v, pause should be ignored before first input", g.Phase())
	}

	// Ignored at game over
	g.phase = PhaseGameOver
	g.Step(frameWith(core.ActionPause))
	if g.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, pause should be ignored at game over", g.Phase())
	}
}

func TestRestartScenario(t *testing.T) {
	cfg := testConfig()
	g := New(cfg, testRuntime(12))
	g.Step(frameWith(core.ActionRight))
	g.score = 5
	g.highScore = 5
	g.interval = cfg.TickMin
	g.endSession()

	g.Step(frameWith(core.ActionRestart))

	if g.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v, expected running right after restart", g.Phase())
	}
	if g.snake.Len() != 3 {
		t.Errorf("Len() = %d, expected fresh snake of 3", g.snake.Len())
	}
	if g.snake.Head() != (core.Point{X: 5, Y: 5}) {
		t.Errorf("head = %v, expected centered (5, 5)", g.snake.Head())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	if g.TickInterval() != cfg.TickInitial {
		t.Errorf("TickInterval() = %v, expected reset to %v", g.TickInterval(), cfg.TickInitial)
	}
	if g.PrevScore() != 5 || g.HighScore() != 5 {
		t.Errorf("prev/high = %d/%d, expected 5/5 to survive restart", g.PrevScore(), g.HighScore())
	}
	if g.snake.Occupies(g.food.Pos()) {
		t.Error("restart food overlaps the snake")
	}

	// No pre-input lockout after restart: the snake moves right immediately
	head := g.snake.Head()
	g.food.pos = core.Point{X: 8, Y: 8}
	g.Step(core.NewInputFrame())
	if g.snake.Head() != (core.Point{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head = %v, expected immediate rightward movement", g.snake.Head())
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := New(testConfig(), testRuntime(13))
	g.food.pos = core.Point{X: 8, Y: 8}
	g.Step(frameWith(core.ActionRight))
	g.score = 2

	g.Step(frameWith(core.ActionRestart))

	if g.Score() != 2 {
		t.Error("restart must only be honored at game over")
	}
}

func TestDeterminism(t *testing.T) {
	script := func(g *Game) Snapshot {
		g.Step(frameWith(core.ActionRight))
		empty := core.NewInputFrame()
		for i := 0; i < 60; i++ {
			switch i {
			case 10:
				g.Step(frameWith(core.ActionUp))
			case 25:
				g.Step(frameWith(core.ActionLeft))
			case 40:
				g.Step(frameWith(core.ActionDown))
			default:
				g.Step(empty)
			}
		}
		return g.Snapshot()
	}

	s1 := script(New(testConfig(), testRuntime(12345)))
	s2 := script(New(testConfig(), testRuntime(12345)))

	if s1 != s2 {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestSeedScores(t *testing.T) {
	g := New(testConfig(), testRuntime(14))
	g.SeedScores(7, 20)

	if g.PrevScore() != 7 || g.HighScore() != 20 {
		t.Errorf("prev/high = %d/%d, expected 7/20", g.PrevScore(), g.HighScore())
	}

	// High score only moves when exceeded
	g.Step(frameWith(core.ActionRight))
	g.score = 3
	g.endSession()
	if g.HighScore() != 20 {
		t.Errorf("HighScore() = %d, expected 20 untouched", g.HighScore())
	}
	if g.PrevScore() != 3 {
		t.Errorf("PrevScore() = %d, expected 3", g.PrevScore())
	}
}

func TestRenderIdempotent(t *testing.T) {
	g := New(testConfig(), testRuntime(15))
	g.Step(frameWith(core.ActionRight))

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	first := dst.String()
	g.Render(dst)
	second := dst.String()

	if first != second {
		t.Error("Render is not idempotent")
	}
}

func TestRenderContents(t *testing.T) {
	g := New(testConfig(), testRuntime(16))
	g.SeedScores(4, 9)

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	content := dst.String()

	if !strings.Contains(content, "SNAKE") {
		t.Error("HUD title missing")
	}
	if !strings.Contains(content, "Prev: 4") {
		t.Error("previous score missing from HUD")
	}
	if !strings.Contains(content, "High: 9") {
		t.Error("high score missing from HUD")
	}
	if !strings.Contains(content, "Press a direction key") {
		t.Error("awaiting-input overlay missing")
	}

	// Game over overlay
	g.Step(frameWith(core.ActionRight))
	g.score = 2
	g.endSession()
	g.Render(dst)
	if !strings.Contains(dst.String(), "Game Over") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(dst.String(), "Press R to restart") {
		t.Error("restart hint missing")
	}
}

func TestFitBoardSize(t *testing.T) {
	tests := []struct {
		cols, rows int
		expected   int
	}{
		{80, 24, 18},  // rows bound: 24-6
		{30, 60, 14},  // cols bound: (30-2)/2
		{10, 10, 10},  // floor
		{200, 60, 54}, // rows bound on a big terminal
	}

	for _, tt := range tests {
		if got := FitBoardSize(tt.cols, tt.rows); got != tt.expected {
			t.Errorf("FitBoardSize(%d, %d) = %d, expected %d", tt.cols, tt.rows, got, tt.expected)
		}
	}
}

func TestBoardFixedAcrossRestarts(t *testing.T) {
	g := New(testConfig(), testRuntime(17))
	board := g.board

	g.phase = PhaseGameOver
	g.Step(frameWith(core.ActionRestart))

	if g.board != board {
		t.Error("Board must not be recreated on restart")
	}
}
