package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pairlink/internal/platform/tui"
	"github.com/vovakirdan/pairlink/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent levels",
	Long: `Display the top scores and the most recent level results.

Examples:
  pairlink scores
  pairlink scores --limit 20
  pairlink scores --run 0b6f...   # Levels of a single run
  pairlink scores --tui           # Interactive scoreboard
  pairlink scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries per table")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show the levels of one run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores and level results")
}

func runScores(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := clearHistory(store); err != nil {
			return err
		}
		fmt.Println("Scores and level history cleared.")
		return nil

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)

	case flagScoresRun != "":
		results, err := store.RunLevelResults(flagScoresRun)
		if err != nil {
			return err
		}
		fmt.Printf("Run %s\n\n", flagScoresRun)
		printLevelResults(results)
		return nil
	}

	scores, err := store.TopScores(storage.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores - PairLink")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pairlink play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}
		if highScore, err := store.HighScore(storage.GameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	results, err := store.RecentLevelResults(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving level results: %w", err)
	}
	if len(results) > 0 {
		fmt.Println()
		fmt.Println("Recent levels")
		fmt.Println()
		printLevelResults(results)
	}
	return nil
}

// clearHistory deletes the scores and the level results.
func clearHistory(store *storage.Store) error {
	if err := store.ClearScores(storage.GameID); err != nil {
		return err
	}
	return store.ClearLevelResults()
}

func printLevelResults(results []storage.LevelResult) {
	if len(results) == 0 {
		fmt.Println("No levels recorded.")
		return
	}
	fmt.Printf("  %-5s  %-7s  %-5s  %-5s  %-8s  %-6s  %s\n", "Level", "Outcome", "Left", "Pairs", "Shuffles", "Score", "Date")
	fmt.Printf("  %-5s  %-7s  %-5s  %-5s  %-8s  %-6s  %s\n", "-----", "-------", "----", "-----", "--------", "-----", "----")
	for _, r := range results {
		fmt.Printf("  %-5d  %-7s  %-5s  %-5d  %-8d  %-6d  %s\n",
			r.Level, r.Outcome, fmt.Sprintf("%ds", r.SecondsLeft), r.PairsRemoved, r.Shuffles, r.Score,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
