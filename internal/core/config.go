package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome describes how a finished game ended.
type Outcome int

const (
	OutcomeNone      Outcome = iota // Game still running or not started
	OutcomeCollision                // Player hit an obstacle
	OutcomeWin                      // Player reached the winning score
)

// String returns the outcome name used in logs and storage.
func (o Outcome) String() string {
	switch o {
	case OutcomeCollision:
		return "collision"
	case OutcomeWin:
		return "win"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Started  bool    // Whether the player has started the run
	GameOver bool    // Whether the game has ended
	Paused   bool    // Whether the game is paused
	Outcome  Outcome // How the game ended, OutcomeNone while running
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick that finished the game.
	Ended bool
}
