package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// Listener receives the events produced by each loop operation together
// with the state after it. Used for sound cues and end-of-game notification.
type Listener func(ev Events, s State)

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// WithListener registers a listener called after every operation that
// produced events.
func WithListener(fn Listener) Option {
	return func(lp *Loop) {
		if fn != nil {
			lp.listeners = append(lp.listeners, fn)
		}
	}
}

// Loop drives a single game. It owns the state and the spawner and exposes
// the operations wired to the platform's timers and input: Tick for the
// physics timer, SpawnTick for the spawn timer and Confirm for the
// jump/confirm key.
//
// Loop is not safe for concurrent use; the platform calls it from one event
// loop.
type Loop struct {
	cfg       config.RunnerConfig
	state     State
	spawner   *Spawner
	running   bool
	paused    bool
	listeners []Listener
	logger    *log.Logger
}

// NewLoop creates a stopped loop in the initial state.
func NewLoop(cfg config.RunnerConfig, seed int64, opts ...Option) *Loop {
	l := &Loop{
		cfg:     cfg,
		state:   NewState(cfg),
		spawner: NewSpawner(seed, cfg.Obstacles),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start begins a run: both timers fire from now on. Starting a finished game
// has no effect; Reset it first.
func (l *Loop) Start() {
	if l.state.Over || l.running {
		return
	}
	l.running = true
	l.state.Started = true
	l.logger.Info("run started", "policy", l.spawner.Policy())
	l.emit(EventStart)
}

// Stop halts both timers. The state is kept.
func (l *Loop) Stop() {
	l.running = false
}

// Reset restores the initial state and stops the loop.
func (l *Loop) Reset() {
	l.state = NewState(l.cfg)
	l.running = false
	l.paused = false
	l.logger.Debug("state reset")
	l.emit(EventReset)
}

// Tick runs one physics step if the game is active.
func (l *Loop) Tick() Events {
	if !l.running || l.paused {
		return 0
	}

	next, ev := Tick(l.state, l.cfg)
	l.state = next

	if ev.Ended() {
		l.Stop()
		l.logger.Info("run finished",
			"outcome", l.state.Outcome,
			"score", l.state.Score,
		)
	}
	l.emit(ev)
	return ev
}

// SpawnTick handles one firing of the spawn timer.
func (l *Loop) SpawnTick() Events {
	if !l.running || l.paused || l.state.Over {
		return 0
	}

	v, ok := l.spawner.Next()
	if !ok {
		l.logger.Debug("spawn skipped")
		return 0
	}

	next, ev := Spawn(l.state, v, l.cfg)
	l.state = next
	l.logger.Debug("obstacle spawned", "variant", v, "evicted", ev.Has(EventEvict))
	l.emit(ev)
	return ev
}

// Confirm handles the single jump/confirm input. On a finished game it
// acknowledges the end-of-game notification and resets. Otherwise it starts
// the run if needed and jumps when the player is grounded.
func (l *Loop) Confirm() Events {
	if l.state.Over {
		l.Reset()
		return EventReset
	}

	var ev Events
	if !l.state.Started {
		l.Start()
		ev |= EventStart
	}
	if l.paused {
		return ev
	}

	next, jumped := Jump(l.state, l.cfg)
	if jumped {
		l.state = next
		ev |= EventJump
		l.emit(EventJump)
	}
	return ev
}

// TogglePause freezes or resumes a run in progress.
func (l *Loop) TogglePause() Events {
	if !l.state.Active() {
		return 0
	}
	l.paused = !l.paused
	ev := EventResume
	if l.paused {
		ev = EventPause
	}
	l.emit(ev)
	return ev
}

// State returns the current state. The obstacle history is shared with the
// loop and must be treated as read-only.
func (l *Loop) State() State {
	return l.state
}

// Running reports whether the timers are live.
func (l *Loop) Running() bool {
	return l.running
}

// Paused reports whether the run is paused.
func (l *Loop) Paused() bool {
	return l.paused
}

// Config returns the configuration the loop was built with.
func (l *Loop) Config() config.RunnerConfig {
	return l.cfg
}

func (l *Loop) emit(ev Events) {
	if ev == 0 {
		return
	}
	for _, fn := range l.listeners {
		fn(ev, l.state)
	}
}
