package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pairlink/internal/config"
	"github.com/vovakirdan/pairlink/internal/core"
	"github.com/vovakirdan/pairlink/internal/games/pairlink"
	"github.com/vovakirdan/pairlink/internal/platform/tui"
	"github.com/vovakirdan/pairlink/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play PairLink",
	Long: `Start a PairLink run in the terminal.

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Space/Enter       - Select tile
  Mouse click       - Select tile
  ?/I               - Hint
  X                 - Shuffle
  N                 - Next level (after clearing)
  R                 - Restart level (new run after time's up)
  P/Esc             - Pause
  Tab               - Toggle full help
  Q/Ctrl+C          - Quit

Examples:
  pairlink play
  pairlink play --level 4
  pairlink play --seed 42
  pairlink play --config ./my-pairlink.yaml --log-file pairlink.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
	}

	gameCfg, err := config.LoadPairLink(flagConfig)
	if err != nil {
		return err
	}

	// Logs would corrupt the alternate screen unless they go to a file
	logger, closeLog, err := newLogger(io.Discard, "pairlink")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		// Continue without storage - game still works
		store = nil
	}

	game := pairlink.New(pairlink.Options{
		Config:     gameCfg,
		StartLevel: flagLevel,
		Logger:     logger,
		Recorder:   storeRecorder{store: store, logger: logger},
	})

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before returning
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
