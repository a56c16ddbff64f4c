package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/finsurf/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Fin Surf with a difficulty picker",
	Long: `Start Fin Surf in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
After a round ends, press B to return to the menu or R to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  finsurf menu
  finsurf menu --fps 30
  finsurf menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	surfCfg := loadSurfConfig()
	store := openStore(logger)

	err := tui.RunSession(tui.SessionOptions{
		Config: runtimeConfig(),
		Surf:   surfCfg,
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}
	if err != nil {
		fatal("%v", err)
	}
}
