package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/finsurf/internal/config"
	"github.com/vovakirdan/finsurf/internal/platform/tui"
	"github.com/vovakirdan/finsurf/internal/platform/web"
)

var (
	flagDifficulty string
	flagSpectate   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round at the chosen difficulty.

Controls:
  Space/Up/W  - Flap
  R           - Play again (after game over)
  B/Esc       - Quit to shell
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy    - Gentle gravity, slower hazards
  medium  - The default
  hard    - Strong gravity, faster hazards

With --spectate, snapshots of every tick are served read-only over
WebSocket at ws://<addr>/spectate.

Examples:
  finsurf play
  finsurf play --difficulty hard
  finsurf play --fps 30 --seed 42
  finsurf play --spectate :8080`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", string(config.DefaultDifficulty),
		"Difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a spectator WebSocket feed on this address")
}

func runPlay(_ *cobra.Command, _ []string) {
	if _, ok := config.ParseDifficulty(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, playing %s\n", flagDifficulty, config.DefaultDifficulty)
	}

	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	surfCfg := loadSurfConfig()
	store := openStore(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := tui.GameOptions{
		Context:    ctx,
		Difficulty: flagDifficulty,
		Config:     runtimeConfig(),
		Surf:       surfCfg,
		Store:      store,
		Logger:     logger,
	}
	if flagSpectate != "" {
		hub := web.NewHub(logger)
		web.NewServer(flagSpectate, hub).Start(ctx)
		opts.OnTick = hub.Publish
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
