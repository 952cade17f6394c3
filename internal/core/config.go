package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its board and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultRuntimeConfig returns a RuntimeConfig with the safe fallback
// dimensions used when the terminal size cannot be queried.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means "not fixed", resolved to current time by the caller
	}
}

// GameState communicates game status to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}
