package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/platform/window"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/sprites"
)

var (
	flagWindow  bool
	flagScale   float64
	flagSprites string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. The mode defaults to "dino".

Modes:
  dino         - an obstacle on every spawn tick
  dino_sparse  - about half of the spawn ticks stay empty

Controls:
  Space/Up/W  - Start, jump, dismiss the end-of-game dialog
  Enter       - Same as Space
  P           - Pause
  Esc/B       - Pause, or leave when no run is in progress
  Ctrl+S      - Save a text screenshot (terminal)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy     - slower cacti, longer gaps
  classic  - standard speed and spawn rate
  hard     - faster cacti, shorter gaps

Examples:
  dino play
  dino play dino_sparse
  dino play --difficulty hard
  dino play --window --scale 1.5
  dino play --config ./my-dino.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale relative to the 750x250 board")
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Directory with sprite images for the window (dino-run.png, cactus1.png, ...)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "dino"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'dino list' to see available modes", gameID)
	}

	logger, closeLog, err := newLogger(flagWindow)
	if err != nil {
		return err
	}
	defer closeLog()

	closeAudio, err := setupGames(logger)
	if err != nil {
		return err
	}
	defer closeAudio()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	if flagWindow {
		src, ok := game.(window.Source)
		if !ok {
			return fmt.Errorf("mode %q cannot run in a window", gameID)
		}
		var images sprites.ImageProvider = sprites.Procedural{}
		if flagSprites != "" {
			images = sprites.Dir{Path: flagSprites, Fallback: sprites.Procedural{}}
		}
		return window.Run(src, window.Options{
			Runtime: cfg,
			Scale:   flagScale,
			Images:  images,
			Store:   store,
			Logger:  logger,
		})
	}

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
