// Package dino adapts the runner loop to the platform's Game interface and
// registers the two spawn modes: "dino" spawns on every spawn tick and
// "dino_sparse" leaves about half of them empty.
package dino

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/runner"
	"github.com/vovakirdan/dino-runner/internal/sprites"
)

// Settings shared by every game instance, set once from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger                        = log.New(io.Discard)
	sounds           audio.Player = audio.Nop{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty keeps the config's
// values.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// SetSoundPlayer sets the sound sink used by new games.
func SetSoundPlayer(p audio.Player) {
	if p == nil {
		p = audio.Nop{}
	}
	sounds = p
}

// Game implements registry.Game and registry.Spawner on top of runner.Loop.
type Game struct {
	id      string
	title   string
	policy  config.SpawnPolicy
	preset  config.DifficultyPreset // overrides the CLI preset when set
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	loop    *runner.Loop
	glyphs  sprites.GlyphProvider
	sounds  audio.Player
	frame   int // animation counter, advanced on active ticks
}

// New creates a game using the given spawn policy.
func New(id, title string, policy config.SpawnPolicy) *Game {
	return &Game{
		id:     id,
		title:  title,
		policy: policy,
		glyphs: sprites.Classic{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetPreset picks the difficulty for this game only. It takes effect on the
// next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// Reset loads the configuration and builds a fresh loop in the initial,
// not-started state.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	cfg.Obstacles.SpawnPolicy = g.policy
	g.cfg = cfg

	g.sounds = sounds
	g.frame = 0
	g.loop = runner.NewLoop(cfg, rt.Seed,
		runner.WithLogger(logger.With("game", g.id)),
		runner.WithListener(g.onEvents),
	)
}

// onEvents turns loop events into sound cues.
func (g *Game) onEvents(ev runner.Events, _ runner.State) {
	switch {
	case ev.Has(runner.EventWin):
		g.sounds.Play(audio.SoundWin)
	case ev.Has(runner.EventCollision):
		g.sounds.Play(audio.SoundCrash)
	case ev.Has(runner.EventJump):
		g.sounds.Play(audio.SoundJump)
	}
}

// Step applies the frame's input, then advances the physics by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.loop.TogglePause()
	}
	if in.Confirmed() {
		g.loop.Confirm()
	}

	ev := g.loop.Tick()
	if g.loop.Running() && !g.loop.Paused() {
		g.frame++
	}

	return core.StepResult{State: g.State(), Ended: ev.Ended()}
}

// SpawnInterval returns the spawn timer period.
func (g *Game) SpawnInterval() time.Duration {
	return g.cfg.SpawnInterval()
}

// Spawn handles one firing of the spawn timer.
func (g *Game) Spawn() {
	g.loop.SpawnTick()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.loop.State()
	return core.GameState{
		Score:    s.Score,
		Started:  s.Started,
		GameOver: s.Over,
		Paused:   g.loop.Paused(),
		Outcome:  s.Outcome,
	}
}

// Snapshot returns the runner state for renderers that draw entities
// directly. The obstacle history must be treated as read-only.
func (g *Game) Snapshot() runner.State {
	return g.loop.State()
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Register both spawn modes with the registry
func init() {
	registry.Register("dino", func() registry.Game {
		return New("dino", "Chrome Dinosaur", config.SpawnAlways)
	})
	registry.Register("dino_sparse", func() registry.Game {
		return New("dino_sparse", "Chrome Dinosaur (sparse)", config.SpawnSparse)
	})
}
