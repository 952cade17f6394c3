// Package config provides YAML-based gameplay configuration loading and
// difficulty presets.
package config

// GameConfig contains the gameplay tuning knobs.
type GameConfig struct {
	Board Board `yaml:"board"`
	Tick  Tick  `yaml:"tick"`
	Speed Speed `yaml:"speed"`
}

// Board defines the playing field.
type Board struct {
	// Size is the board edge length in cells; 0 derives the largest
	// square that fits the terminal.
	Size int `yaml:"size"`
}

// Tick defines the simulation pacing in milliseconds.
type Tick struct {
	InitialMs int `yaml:"initial_ms"`
	StepMs    int `yaml:"step_ms"`
	MinMs     int `yaml:"min_ms"`
}

// Speed defines the progressive-difficulty cadence.
type Speed struct {
	Enabled      bool `yaml:"enabled"`
	SpeedupEvery int  `yaml:"speedup_every"` // foods eaten per speedup
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// initialMsForPreset returns the starting tick interval for a preset.
func initialMsForPreset(p Preset) int {
	switch p {
	case PresetEasy:
		return 180
	case PresetHard:
		return 100
	default:
		return 140
	}
}

// ApplyPreset adjusts the config for a named difficulty.
// "fixed" disables progression entirely and keeps the configured pace.
func ApplyPreset(cfg *GameConfig, p Preset) {
	if p == "" {
		return
	}
	if p == PresetFixed {
		cfg.Speed.Enabled = false
		return
	}
	cfg.Speed.Enabled = true
	cfg.Tick.InitialMs = initialMsForPreset(p)
}

// ValidPreset reports whether the string names a known preset.
func ValidPreset(s string) bool {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return true
	}
	return false
}
