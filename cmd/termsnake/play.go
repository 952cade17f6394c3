package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mzolotov/termsnake/internal/config"
	"github.com/mzolotov/termsnake/internal/core"
	"github.com/mzolotov/termsnake/internal/game"
	"github.com/mzolotov/termsnake/internal/platform/tui"
	"github.com/mzolotov/termsnake/internal/storage"
)

var (
	flagSize       int
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a snake game.

Controls:
  W/Up       - Move up
  S/Down     - Move down
  A/Left     - Move left
  D/Right    - Move right
  P          - Pause / resume
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower starting speed, speeds up as you eat
  normal - Default starting speed, speeds up as you eat
  hard   - Faster starting speed, speeds up as you eat
  fixed  - No progression, constant speed

Examples:
  termsnake play
  termsnake play --difficulty easy
  termsnake play --size 20
  termsnake play --config ./my-snake.yaml
  termsnake play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size in cells (0 = fit to terminal)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard, or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Load the game config chain, then apply the preset on top.
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.Preset(flagDifficulty))

	// Terminal size determines the board unless overridden.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := resolveSeed(flagSeed)

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	}

	cfg := game.Config{
		BoardSize:    gameCfg.Board.Size,
		TickInitial:  time.Duration(gameCfg.Tick.InitialMs) * time.Millisecond,
		TickStep:     time.Duration(gameCfg.Tick.StepMs) * time.Millisecond,
		TickMin:      time.Duration(gameCfg.Tick.MinMs) * time.Millisecond,
		SpeedupEvery: gameCfg.Speed.SpeedupEvery,
		Progression:  gameCfg.Speed.Enabled,
	}
	if flagSize > 0 {
		cfg.BoardSize = flagSize
	}
	if cfg.BoardSize <= 0 {
		cfg.BoardSize = game.FitBoardSize(width, height)
	}

	g := game.New(cfg, rc)
	logger.Debug("game created",
		"board", g.Snapshot().BoardSize,
		"interval", g.TickInterval(),
		"seed", seed)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		seedScores(g, store, logger)
	}

	// Run the game
	runErr := tui.Run(g, store, logger, rc)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveSeed turns the flag value into the RNG seed. 0 means "not fixed"
// and resolves to the current time, so an explicit --seed stays
// reproducible while default sessions differ.
func resolveSeed(flag int64) int64 {
	if flag == 0 {
		return time.Now().UnixNano()
	}
	return flag
}

// seedScores loads the previous and best scores so the HUD shows them
// from the first frame.
func seedScores(g *game.Game, store *storage.Store, logger *log.Logger) {
	prev, err := store.LastScore()
	if err != nil {
		logger.Warn("failed to load last score", "err", err)
	}
	high, err := store.HighScore()
	if err != nil {
		logger.Warn("failed to load high score", "err", err)
	}
	g.SeedScores(prev, high)
}
