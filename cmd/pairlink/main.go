// pairlink is a terminal tile-matching puzzle: link two equal tiles with a
// path of at most two turns to remove them, and clear the board before the
// timer runs out.
//
// Usage:
//
//	pairlink play            - Play in the terminal (keyboard and mouse)
//	pairlink levels          - Show the level table
//	pairlink scores          - Show high scores and recent levels
//	pairlink autoplay        - Solve a level headlessly and print the board
//	pairlink serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.pairlink/scores.db)
//	--config <path>      - Use a custom config YAML
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pairlink",
	Short: "PairLink - link matching tiles in your terminal",
	Long: `PairLink is a timed tile-matching puzzle. Select two equal tiles that
can be joined by a path of at most two turns through empty cells (or around
the board edge) to remove them. Clear the board to reach the next level.

Available commands:
  play      - Play a game
  levels    - Show the level table
  scores    - View high scores and recent levels
  autoplay  - Solve a level without a terminal
  serve     - Start SSH server for remote play

Examples:
  pairlink play
  pairlink play --level 3
  pairlink scores --tui
  pairlink autoplay --level 2 --seed 42
  pairlink serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pairlink/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(serveCmd)
}
