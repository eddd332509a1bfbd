// Package config provides YAML-based configuration loading and difficulty
// presets for the runner.
package config

import (
	"fmt"
	"time"
)

// RunnerConfig contains all configuration for the Dino Runner game.
type RunnerConfig struct {
	Board     BoardConfig    `yaml:"board"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// BoardConfig defines the logical playfield. Renderers scale it to their
// own surface.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines vertical motion parameters for the player.
type PhysicsConfig struct {
	Gravity     int `yaml:"gravity"`
	JumpImpulse int `yaml:"jump_impulse"`
}

// PlayerConfig defines the player's initial pose. Y doubles as the ground line.
type PlayerConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstacleConfig defines obstacle geometry, motion and spawning.
type ObstacleConfig struct {
	SpawnX          int         `yaml:"spawn_x"`
	GroundOffset    int         `yaml:"ground_offset"`
	Height          int         `yaml:"height"`
	VelocityX       int         `yaml:"velocity_x"`
	MaxHistory      int         `yaml:"max_history"`
	SpawnIntervalMS int         `yaml:"spawn_interval_ms"`
	SpawnPolicy     SpawnPolicy `yaml:"spawn_policy"`
	Widths          []int       `yaml:"widths"` // small, medium, large
	Bands           Bands       `yaml:"bands"`
}

// Bands are the cumulative-probability thresholds used to map a uniform roll
// in [0,1) to an obstacle variant.
type Bands struct {
	Medium      float64 `yaml:"medium"`       // roll >= Medium selects the medium variant
	Large       float64 `yaml:"large"`        // roll >= Large selects the large variant
	SparseFloor float64 `yaml:"sparse_floor"` // sparse policy: roll < SparseFloor spawns nothing
}

// ScoringConfig defines the end condition for a winning run.
type ScoringConfig struct {
	WinScore int `yaml:"win_score"`
}

// SpawnPolicy selects how rolls below the small-variant band are treated.
type SpawnPolicy string

const (
	// SpawnAlways spawns an obstacle on every spawn timer firing.
	SpawnAlways SpawnPolicy = "always"
	// SpawnSparse skips the spawn for rolls below Bands.SparseFloor.
	SpawnSparse SpawnPolicy = "sparse"
)

// SpawnInterval returns the spawn timer period.
func (c RunnerConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Obstacles.SpawnIntervalMS) * time.Millisecond
}

// GroundY returns the player's ground line.
func (c RunnerConfig) GroundY() int {
	return c.Player.Y
}

// ObstacleY returns the top edge of every spawned obstacle.
func (c RunnerConfig) ObstacleY() int {
	return c.Board.Height - c.Obstacles.GroundOffset
}

// Validate checks that a loaded config describes a playable game.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("config: board must have positive size, got %dx%d", c.Board.Width, c.Board.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player must have positive size")
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("config: jump_impulse must be negative, got %d", c.Physics.JumpImpulse)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: gravity must be positive, got %d", c.Physics.Gravity)
	case len(c.Obstacles.Widths) != 3:
		return fmt.Errorf("config: obstacles.widths needs 3 entries, got %d", len(c.Obstacles.Widths))
	case c.Obstacles.MaxHistory < 1:
		return fmt.Errorf("config: max_history must be at least 1, got %d", c.Obstacles.MaxHistory)
	case c.Obstacles.SpawnIntervalMS <= 0:
		return fmt.Errorf("config: spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	case c.Obstacles.SpawnPolicy != SpawnAlways && c.Obstacles.SpawnPolicy != SpawnSparse:
		return fmt.Errorf("config: unknown spawn_policy %q", c.Obstacles.SpawnPolicy)
	case c.Scoring.WinScore <= 0:
		return fmt.Errorf("config: win_score must be positive, got %d", c.Scoring.WinScore)
	}

	b := c.Obstacles.Bands
	if !(0 <= b.SparseFloor && b.SparseFloor <= b.Medium && b.Medium <= b.Large && b.Large <= 1) {
		return fmt.Errorf("config: bands must satisfy 0 <= sparse_floor <= medium <= large <= 1")
	}
	for i, w := range c.Obstacles.Widths {
		if w <= 0 {
			return fmt.Errorf("config: obstacles.widths[%d] must be positive, got %d", i, w)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyClassic DifficultyPreset = "classic"
	DifficultyHard    DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. An empty string means
// "keep the loaded config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyClassic, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, classic or hard)", s)
	}
}
