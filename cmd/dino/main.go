// dino is a Chrome Dinosaur style endless runner for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	dino play [mode]         - Play (default mode: dino)
//	dino list                - List available modes
//	dino menu                - Pick modes interactively
//	dino scores [mode]       - Show high scores
//	dino serve               - Start SSH server for remote play
//	dino config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/dino.db)
//	--config <path>       - Custom runner config YAML
//	--difficulty <name>   - Preset: easy, classic, hard
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Chrome Dinosaur - jump the cacti, reach 1001",
	Long: `A Chrome Dinosaur style endless runner.

The dinosaur runs on its own; press Space to jump over the cacti.
Every tick scores a point. Hit a cactus and the run is over;
reach 1001 points and you win.

Available commands:
  play     - Play a mode directly (terminal, or --window)
  list     - Show all available modes
  menu     - Interactive mode picker with scoreboard
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  dino play
  dino play dino_sparse --difficulty hard
  dino play --window
  dino serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, classic, hard")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")
	pf.Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
