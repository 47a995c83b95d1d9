package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pairlink/internal/config"
	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

var (
	flagLevelsYAML   bool
	flagLevelsCycles int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Print the effective level table: board size, tile count and time budget
per level. Time budgets shrink each time the table wraps around.

Examples:
  pairlink levels
  pairlink levels --cycles 3
  pairlink levels --yaml > ~/.pairlink/configs/pairlink.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagLevelsYAML, "yaml", false, "Print the effective configuration as YAML")
	levelsCmd.Flags().IntVar(&flagLevelsCycles, "cycles", 2, "Number of passes through the table to show")
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadPairLink(flagConfig)
	if err != nil {
		return err
	}

	if flagLevelsYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("cannot encode config: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	table := cfg.LevelTable()
	cycles := max(flagLevelsCycles, 1)

	fmt.Println("PairLink levels")
	fmt.Println()
	fmt.Printf("  %-5s  %-7s  %-5s  %s\n", "Level", "Board", "Tiles", "Time")
	fmt.Printf("  %-5s  %-7s  %-5s  %s\n", "-----", "-----", "-----", "----")

	for i := range len(table.Levels) * cycles {
		l := table.Settings(i)
		board := fmt.Sprintf("%dx%d", l.Cols, l.Rows)
		fmt.Printf("  %-5d  %-7s  %-5d  %s\n", i+1, board, l.Cols*l.Rows, core.FormatClock(l.Time))
	}

	fmt.Println()
	fmt.Printf("Time drops by %ds per pass, never below %s.\n", table.CycleDiscount, core.FormatClock(table.MinTime))
	return nil
}
