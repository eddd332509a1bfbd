package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// newLogger builds the process logger from --log-level and --log-file.
// Full-screen commands pass toStderr=false so log lines never land on the
// alternate screen; without --log-file their logs are dropped.
func newLogger(toStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "dino",
	})
	return logger, closeFn, nil
}

// setupGames applies the global flags to every game created afterwards and
// opens the speaker. The returned func releases audio.
func setupGames(logger *log.Logger) (func(), error) {
	dino.SetConfigPath(flagConfig)
	if err := dino.SetDifficultyPreset(flagDifficulty); err != nil {
		return nil, err
	}
	dino.SetLogger(logger)

	player, closeAudio, err := audio.Open(flagMute, flagVolume)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
	}
	dino.SetSoundPlayer(player)
	return closeAudio, nil
}

// openStore opens the scores database. A failure is logged and play goes on
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
