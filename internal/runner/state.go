package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Events is a set of things that happened during one update.
type Events uint16

const (
	EventStart Events = 1 << iota
	EventJump
	EventLand
	EventSpawn
	EventEvict
	EventCollision
	EventWin
	EventReset
	EventPause
	EventResume
)

// Has reports whether all events in e are set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// Ended reports whether the update finished the game.
func (ev Events) Ended() bool {
	return ev&(EventCollision|EventWin) != 0
}

// State is the complete game state. The update functions below take a State
// by value and return the next one, leaving the input untouched.
type State struct {
	Player    Player
	Obstacles History
	Score     int
	Started   bool
	Over      bool
	Outcome   core.Outcome
}

// NewState returns the initial state: player on the ground, no obstacles,
// score zero, not started.
func NewState(cfg config.RunnerConfig) State {
	return State{
		Player:    NewPlayer(cfg.Player),
		Obstacles: NewHistory(cfg.Obstacles.MaxHistory),
	}
}

// Active reports whether ticks advance the simulation.
func (s State) Active() bool {
	return s.Started && !s.Over
}

// Tick advances the simulation by one fixed step: gravity on the player,
// every obstacle moves, then the player is tested against each obstacle in
// order and the first hit ends the game. A tick without a collision adds one
// point; reaching the win score ends the game as a win.
//
// Ticks outside the active state are no-ops.
func Tick(s State, cfg config.RunnerConfig) (State, Events) {
	if !s.Active() {
		return s, 0
	}

	var ev Events
	s.Obstacles = s.Obstacles.Clone()

	if s.Player.Move(cfg.Physics.Gravity) {
		ev |= EventLand
	}

	obstacles := s.Obstacles.items
	for i := range obstacles {
		obstacles[i].Move()
	}

	for _, o := range obstacles {
		if s.Player.Collides(o.Entity) {
			s.Over = true
			s.Outcome = core.OutcomeCollision
			s.Player.Die()
			return s, ev | EventCollision
		}
	}

	s.Score++
	if s.Score >= cfg.Scoring.WinScore {
		s.Over = true
		s.Outcome = core.OutcomeWin
		ev |= EventWin
	}
	return s, ev
}

// Jump applies the jump impulse when the player is grounded and the game is
// not over. Otherwise the state is returned unchanged and ok is false.
func Jump(s State, cfg config.RunnerConfig) (State, bool) {
	if s.Over || !s.Player.Grounded() {
		return s, false
	}
	s.Player.Jump(cfg.Physics.JumpImpulse)
	return s, true
}

// Spawn appends a new obstacle of the given variant at the spawn point,
// evicting the oldest one past the history limit. No-op once the game is over.
func Spawn(s State, v Variant, cfg config.RunnerConfig) (State, Events) {
	if s.Over {
		return s, 0
	}
	s.Obstacles = s.Obstacles.Clone()
	ev := EventSpawn
	if s.Obstacles.Push(NewObstacle(v, cfg)) {
		ev |= EventEvict
	}
	return s, ev
}
