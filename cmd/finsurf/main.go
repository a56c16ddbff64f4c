// finsurf is a terminal arcade game: surf the flier through a stream of
// rewards and penalties before your three lives run out.
//
// Usage:
//
//	finsurf play [--difficulty d]   - Play one difficulty
//	finsurf menu                    - Start the menu to pick a difficulty
//	finsurf scores [difficulty]     - Show high scores and recent runs
//	finsurf difficulties            - List difficulty tiers
//	finsurf serve                   - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Simulation rate, 20..60 (default: 20)
//	--seed <value>      - RNG seed for reproducible hazard placement
//	--db <path>         - Database path (default: ~/.arcade/finsurf.db)
//	--config <path>     - Game tuning YAML
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/finsurf/internal/config"
	"github.com/vovakirdan/finsurf/internal/core"
	"github.com/vovakirdan/finsurf/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "finsurf",
	Short: "Fin Surf - an arcade surfing game for your terminal",
	Long: `Fin Surf is a one-button arcade game. Flap to stay in the water band,
collect the yellow and green pickups and dodge the red ones.
Three hits and the round is over.

Available commands:
  play          - Play a round at a given difficulty
  menu          - Interactive difficulty picker
  scores        - View high scores and recent runs
  difficulties  - List difficulty tiers
  serve         - Start SSH server for remote play

Examples:
  finsurf play --difficulty hard
  finsurf menu
  finsurf scores medium
  finsurf serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate,
		fmt.Sprintf("Tick rate (%d-%d ticks per second)", core.MinTickRate, core.MaxTickRate))
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(serveCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the CLI logger. Logs go to --log-file if set, otherwise
// to fallback. Interactive commands pass io.Discard because the terminal
// belongs to Bubble Tea.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatal("invalid --log-level %q", flagLogLevel)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal("cannot open log file: %v", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "finsurf",
		Level:           level,
	})
	return logger, closeFn
}

// loadSurfConfig loads the game tuning or exits.
func loadSurfConfig() config.SurfConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	return cfg
}

// openStore opens the scores database. A failure is reported and the game
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without persistence", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig returns the terminal size and tick settings.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.ClampedTickRate() != flagFPS {
		fmt.Fprintf(os.Stderr, "Warning: --fps %d out of range, using %d\n", flagFPS, cfg.ClampedTickRate())
		cfg.TickRate = cfg.ClampedTickRate()
	}
	return cfg
}
