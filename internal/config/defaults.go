package config

import (
	_ "embed"
)

//go:embed defaults/termsnake.yaml
var defaultYAML []byte

// Default returns the standard gameplay configuration.
func Default() GameConfig {
	return GameConfig{
		Board: Board{Size: 0},
		Tick: Tick{
			InitialMs: 140,
			StepMs:    8,
			MinMs:     30,
		},
		Speed: Speed{
			Enabled:      true,
			SpeedupEvery: 4,
		},
	}
}
