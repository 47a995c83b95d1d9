package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pairlink/internal/config"
	"github.com/vovakirdan/pairlink/internal/games/pairlink/core"
)

var (
	flagAutoLevel    int
	flagAutoMaxMoves int
	flagAutoQuiet    bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Solve a level without a terminal",
	Long: `Build a level and play it with hinted moves until the board is cleared.
The final board is printed as text. With --seed the run is reproducible.

Examples:
  pairlink autoplay
  pairlink autoplay --level 3 --seed 42
  pairlink autoplay --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagAutoLevel, "level", 1, "Level to solve (1-based)")
	autoplayCmd.Flags().IntVar(&flagAutoMaxMoves, "max-moves", 1000, "Stop after this many pairs")
	autoplayCmd.Flags().BoolVar(&flagAutoQuiet, "quiet", false, "Print only the summary")
}

func runAutoplay(_ *cobra.Command, _ []string) error {
	if flagAutoLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagAutoLevel)
	}

	cfg, err := config.LoadPairLink(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "autoplay")
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := core.NewVirtualClock()
	session, err := core.NewSession(flagAutoLevel-1, core.Options{
		Rand:            rand.New(rand.NewSource(seed)), //#nosec G404 -- game randomness
		Scheduler:       clock,
		Levels:          cfg.LevelTable(),
		Symbols:         cfg.SymbolPool(),
		ResolveDelay:    cfg.ResolveDelay(),
		ShuffleAttempts: cfg.ShuffleAttempts,
		Listener: func(ev core.Event) {
			logger.Debug("event", "kind", ev.Kind, "a", ev.A, "b", ev.B, "time", ev.TimeRemaining)
		},
	})
	if err != nil {
		return fmt.Errorf("cannot build level: %w", err)
	}
	defer session.Teardown()

	if !flagAutoQuiet {
		fmt.Print(core.RenderASCII(session))
		fmt.Println()
	}

	res := session.Autoplay(flagAutoMaxMoves, clock)
	stats := session.Stats()

	if !flagAutoQuiet {
		fmt.Print(core.RenderASCII(session))
		fmt.Println()
	}

	fmt.Printf("Seed: %d\n", seed)
	fmt.Printf("Pairs removed: %d, shuffles: %d\n", res.Moves, stats.Shuffles)
	switch {
	case res.Cleared:
		fmt.Println("Result: cleared")
	case res.Deadlock:
		fmt.Println("Result: deadlock")
	default:
		fmt.Printf("Result: stopped with %d tiles left\n", session.TilesRemaining())
	}
	logger.Info("autoplay finished", "seed", seed, "level", flagAutoLevel, "moves", res.Moves, "cleared", res.Cleared)
	return nil
}
