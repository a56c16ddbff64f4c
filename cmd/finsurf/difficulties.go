package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/finsurf/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:     "difficulties",
	Aliases: []string{"list"},
	Short:   "List difficulty tiers",
	Long:    `Shows every difficulty tier with the physics it runs, including overrides from --config.`,
	Run:     runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	cfg := loadSurfConfig()

	fmt.Println("Difficulty tiers:")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-8s  %s\n", "Name", "Gravity", "Impulse", "Speed")
	fmt.Printf("  %-8s  %-8s  %-8s  %s\n", "----", "-------", "-------", "-----")

	for _, d := range config.Difficulties() {
		p := cfg.Profile(string(d))
		marker := ""
		if d == config.DefaultDifficulty {
			marker = "  (default)"
		}
		fmt.Printf("  %-8s  %-8.1f  %-8.0f  x%.1f%s\n", d, p.Gravity, p.Impulse, p.SpeedMultiplier, marker)
	}

	fmt.Println()
	fmt.Println("Run 'finsurf play --difficulty <name>' to play a tier.")
}
