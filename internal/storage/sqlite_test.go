package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gamebox/internal/core"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("snake", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("snake", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("snake", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("snake_wide", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for snake
	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for the other game
	otherScores, err := store.TopScores("snake_wide", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(otherScores) != 1 {
		t.Errorf("Expected 1 score for the other game, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("snake", 100)
	store.SaveScore("snake", 300)
	store.SaveScore("snake", 200)

	high, err = store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("snake", 100)
	store.SaveScore("snake", 200)
	store.SaveScore("snake_wide", 300)

	// Clear only snake scores
	err = store.ClearScores("snake")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Snake should be empty
	snakeScores, _ := store.TopScores("snake", 10)
	if len(snakeScores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snakeScores))
	}

	// The other game should still have scores
	otherScores, _ := store.TopScores("snake_wide", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other game scores should not be affected by clearing snake")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStorePuzzleResults(t *testing.T) {
	store := openTestStore(t)

	outcomes := []core.PuzzleOutcome{
		{Variant: 3, Moves: 9},
		{Variant: 3, Moves: 7},
		{Variant: 3, Moves: 7, Assisted: true},
		{Variant: 3, Moves: 8},
		{Variant: 5, Moves: 31, Assisted: true},
		{Variant: 4, Moves: 20},
	}
	for _, out := range outcomes {
		if _, err := store.SavePuzzleResult("hanoi", out); err != nil {
			t.Fatalf("SavePuzzleResult() failed: %v", err)
		}
	}
	store.SavePuzzleResult("other", core.PuzzleOutcome{Variant: 3, Moves: 1}) //nolint:errcheck // fixture

	best, err := store.BestPuzzleResults("hanoi")
	if err != nil {
		t.Fatalf("BestPuzzleResults() failed: %v", err)
	}

	// Variant 5 was only solved with help, so it has no best.
	if len(best) != 2 {
		t.Fatalf("Expected 2 best results, got %d: %+v", len(best), best)
	}
	if best[0].Variant != 3 || best[0].Moves != 7 || best[0].Assisted {
		t.Errorf("Best for 3 disks = %+v", best[0])
	}
	if best[1].Variant != 4 || best[1].Moves != 20 {
		t.Errorf("Best for 4 disks = %+v", best[1])
	}

	recent, err := store.RecentPuzzleResults("hanoi", 2)
	if err != nil {
		t.Fatalf("RecentPuzzleResults() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Variant != 4 || !recent[1].Assisted {
		t.Errorf("Recent results = %+v", recent)
	}

	if err := store.ClearPuzzleResults("hanoi"); err != nil {
		t.Fatalf("ClearPuzzleResults() failed: %v", err)
	}
	if best, _ := store.BestPuzzleResults("hanoi"); len(best) != 0 {
		t.Errorf("Expected no results after clear, got %d", len(best))
	}
	if other, _ := store.RecentPuzzleResults("other", 10); len(other) != 1 {
		t.Error("Clearing hanoi results should not touch other puzzles")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{4, 10, 1} {
		store.SaveScore("snake", score) //nolint:errcheck // fixture
	}

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 10 || stats.TotalScore != 15 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["snake"] == nil || all["snake"].GamesCount != 3 {
		t.Errorf("Unexpected all-games stats: %+v", all)
	}
}
