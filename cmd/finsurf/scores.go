package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/finsurf/internal/config"
	"github.com/vovakirdan/finsurf/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Without an argument, show the best score for every difficulty and the
most recent runs. With a difficulty, show its top runs and statistics.

Examples:
  finsurf scores
  finsurf scores hard
  finsurf scores hard --limit 20
  finsurf scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete scores (for one difficulty, or all)")
}

func runScores(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	difficulty := ""
	if len(args) == 1 {
		d, ok := config.ParseDifficulty(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'finsurf difficulties' to see available tiers.")
			os.Exit(1)
		}
		difficulty = string(d)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearScores(difficulty)
		if err == nil {
			logger.Info("scores cleared", "difficulty", difficulty)
			fmt.Println("Scores cleared.")
		}
	case difficulty == "":
		err = printSummary(store)
	default:
		err = printDifficulty(store, difficulty)
	}

	if err != nil {
		store.Close()
		fatal("%v", err)
	}
}

// printSummary shows every tier's best and the latest runs.
func printSummary(store *storage.Store) error {
	best, err := store.AllHighScores()
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Fin Surf")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %s\n", "Tier", "Best", "Set")
	fmt.Printf("  %-8s  %-8s  %s\n", "----", "----", "---")
	for _, d := range config.Difficulties() {
		entry, ok := best[string(d)]
		if !ok {
			fmt.Printf("  %-8s  %-8s  %s\n", d, "-", "-")
			continue
		}
		fmt.Printf("  %-8s  %-8d  %s\n", d, entry.Score, entry.UpdatedAt.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'finsurf play' to set the first high score!")
		return nil
	}

	fmt.Println("Recent runs:")
	printRuns(runs, true)
	return nil
}

// printDifficulty shows one tier's top runs and statistics.
func printDifficulty(store *storage.Store, difficulty string) error {
	runs, err := store.TopRuns(difficulty, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", strings.ToUpper(difficulty))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'finsurf play --difficulty %s' to set the first high score!\n", difficulty)
		return nil
	}

	printRuns(runs, false)

	stats, err := store.Stats(difficulty)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Avg: %.1f   Last played: %s\n",
		stats.HighScore, stats.RunsCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

func printRuns(runs []storage.RunEntry, withTier bool) {
	if withTier {
		fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "#", "Tier", "Score", "Ticks", "Date")
		fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "-", "----", "-----", "-----", "----")
	} else {
		fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Date")
		fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----")
	}

	for i, r := range runs {
		date := r.CreatedAt.Format("2006-01-02 15:04")
		if withTier {
			fmt.Printf("  %-4d  %-8s  %-8d  %-8d  %s\n", i+1, r.Difficulty, r.Score, r.Ticks, date)
		} else {
			fmt.Printf("  %-4d  %-8d  %-8d  %s\n", i+1, r.Score, r.Ticks, date)
		}
	}
}
