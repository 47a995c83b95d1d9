package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(GameID, 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected persisted score 42, got %d", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200, 300, 10} {
		if _, err := store.SaveScore(GameID, s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 999)

	scores, err := store.TopScores(GameID, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	want := []int{300, 200, 100}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != GameID {
			t.Errorf("scores[%d] belongs to %q", i, scores[i].GameID)
		}
	}

	all, err := store.AllScores(GameID)
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(GameID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore(GameID, 120)
	store.SaveScore(GameID, 80)
	store.SaveScore("other", 500)

	if high, _ = store.HighScore(GameID); high != 120 {
		t.Errorf("Expected high score of 120, got %d", high)
	}

	if err := store.ClearScores(GameID); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores(GameID, 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other scores should not be affected by clear")
	}
}

func TestStoreLevelResults(t *testing.T) {
	store := openTestStore(t)

	run := []LevelResult{
		{RunID: "run-a", Level: 1, Outcome: OutcomeCleared, SecondsLeft: 120, PairsRemoved: 24, Score: 360},
		{RunID: "run-a", Level: 2, Outcome: OutcomeTimeUp, PairsRemoved: 10, Shuffles: 1, Score: 460},
		{RunID: "run-b", Level: 1, Outcome: OutcomeCleared, SecondsLeft: 5, PairsRemoved: 24, Score: 245},
	}
	for _, r := range run {
		if _, err := store.SaveLevelResult(r); err != nil {
			t.Fatalf("SaveLevelResult(%+v) failed: %v", r, err)
		}
	}

	got, err := store.RunLevelResults("run-a")
	if err != nil {
		t.Fatalf("RunLevelResults() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 results for run-a, got %d", len(got))
	}
	if got[0].Level != 1 || got[1].Level != 2 {
		t.Errorf("Expected play order, got levels %d, %d", got[0].Level, got[1].Level)
	}
	if got[1].Outcome != OutcomeTimeUp || got[1].Shuffles != 1 || got[1].Score != 460 {
		t.Errorf("Unexpected second result %+v", got[1])
	}

	recent, err := store.RecentLevelResults(2)
	if err != nil {
		t.Fatalf("RecentLevelResults() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].RunID != "run-b" {
		t.Errorf("Expected newest first, got %+v", recent)
	}
}

func TestStoreSaveLevelResultRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		r    LevelResult
	}{
		{"missing run id", LevelResult{Level: 1, Outcome: OutcomeCleared}},
		{"unknown outcome", LevelResult{RunID: "x", Level: 1, Outcome: "quit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveLevelResult(tt.r); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStoreClearLevelResults(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []LevelResult{
		{RunID: "run-a", Level: 1, Outcome: OutcomeCleared, Score: 100},
		{RunID: "run-b", Level: 1, Outcome: OutcomeTimeUp, Score: 30},
	} {
		if _, err := store.SaveLevelResult(r); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	if err := store.ClearLevelResults(); err != nil {
		t.Fatalf("ClearLevelResults() failed: %v", err)
	}
	if results, _ := store.RecentLevelResults(10); len(results) != 0 {
		t.Errorf("Expected no level results after clear, got %d", len(results))
	}
}
