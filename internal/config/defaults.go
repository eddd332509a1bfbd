package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultRunnerConfig returns the built-in Dino Runner configuration.
// It matches defaults/dino.yaml and is used when the embedded file cannot
// be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Board: BoardConfig{
			Width:  750,
			Height: 250,
		},
		Physics: PhysicsConfig{
			Gravity:     1,
			JumpImpulse: -17,
		},
		Player: PlayerConfig{
			X:      50,
			Y:      156,
			Width:  88,
			Height: 94,
		},
		Obstacles: ObstacleConfig{
			SpawnX:          700,
			GroundOffset:    70,
			Height:          70,
			VelocityX:       -12,
			MaxHistory:      10,
			SpawnIntervalMS: 1500,
			SpawnPolicy:     SpawnAlways,
			Widths:          []int{34, 69, 102},
			Bands: Bands{
				Medium:      0.70,
				Large:       0.90,
				SparseFloor: 0.50,
			},
		},
		Scoring: ScoringConfig{
			WinScore: 1001,
		},
	}
}

// DefaultYAML returns the embedded default YAML, printed by `dino config`
// as a starting point for custom files.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
