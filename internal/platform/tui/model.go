package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// Model is the Bubble Tea model for running one game. It drives the game's
// fixed tick and, for games implementing registry.Spawner, a spawn timer
// that runs while the game is started and not over.
type Model struct {
	game       registry.Game
	spawner    registry.Spawner // nil when the game has no spawn timer
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	tickChain  int64
	spawnChain int64 // zero while no spawn timer runs
	embedded   bool  // running inside a session; Back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	spawner, _ := game.(registry.Spawner)

	return Model{
		game:       game,
		spawner:    spawner,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		tickChain:  newChain(),
	}
}

// Init resets the game and starts the tick loop. The spawn timer starts
// once the player starts the run.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.tickChain, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Chain != m.tickChain {
			return m, nil
		}
		return m.handleTick()

	case SpawnMsg:
		return m.handleSpawn(msg)
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		// Back leaves the game unless a run is in progress, where it pauses.
		if m.embedded && !m.running() {
			m.backToMenu = true
			return m, nil
		}
		if !m.embedded && !m.gameState.Started {
			m.quitting = true
			return m, tea.Quit
		}
		action = core.ActionPause
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// running reports whether a run is in progress and not paused.
func (m Model) running() bool {
	return m.gameState.Started && !m.gameState.GameOver && !m.gameState.Paused
}

// handleTick steps the game, keeps the spawn timer in sync with the run and
// saves the score when the run ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.tickChain, m.config.TickRate)}

	wasActive := prev.Started && !prev.GameOver
	active := m.gameState.Started && !m.gameState.GameOver
	switch {
	case active && !wasActive && m.spawner != nil:
		m.spawnChain = newChain()
		cmds = append(cmds, spawnCmd(m.spawnChain, m.spawner.SpawnInterval()))
	case !active && wasActive:
		m.spawnChain = 0
	}

	if result.Ended {
		m.saveScore()
	}

	return m, tea.Batch(cmds...)
}

// handleSpawn forwards a spawn timer firing from the current chain and
// schedules the next one.
func (m Model) handleSpawn(msg SpawnMsg) (tea.Model, tea.Cmd) {
	if m.spawner == nil || m.spawnChain == 0 || msg.Chain != m.spawnChain {
		return m, nil
	}
	m.spawner.Spawn()
	return m, spawnCmd(m.spawnChain, m.spawner.SpawnInterval())
}

// saveScore records a finished run. Storage problems are logged, never fatal.
func (m Model) saveScore() {
	outcome := m.gameState.Outcome.String()
	m.logger.Info("run ended", "game", m.game.ID(), "score", m.gameState.Score, "outcome", outcome)

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, outcome); err != nil {
		m.logger.Warn("score not saved", "err", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
