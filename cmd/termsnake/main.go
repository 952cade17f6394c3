// termsnake is a classic snake game played in the terminal.
//
// Usage:
//
//	termsnake play            - Start a game
//	termsnake scores          - Show high scores
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.termsnake/scores.db)
//	--debug         - Write debug logs to ~/.termsnake/termsnake.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal",
	Long: `termsnake is a terminal snake game. Guide the snake to food,
grow longer, and avoid the walls and your own tail.

Available commands:
  play     - Start a game
  scores   - View high scores

Examples:
  termsnake play
  termsnake play --difficulty hard
  termsnake play --size 20
  termsnake scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.termsnake/termsnake.log")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the game logger. Terminal output belongs to the
// game screen, so logs go to a file; without --debug they are dropped.
func newLogger() *log.Logger {
	if !flagDebug {
		return log.New(io.Discard)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard)
	}
	dir := filepath.Join(home, ".termsnake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(filepath.Join(dir, "termsnake.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger
}
