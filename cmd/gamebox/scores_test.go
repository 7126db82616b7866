package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/storage"
)

func openScoresStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScores(t *testing.T) {
	store := openScoresStore(t)
	for i := 1; i <= 12; i++ {
		if _, err := store.SaveScore("snake", i); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name     string
		all      bool
		wantRows int
	}{
		{"top ten", false, 10},
		{"all", true, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printScores(&buf, store, "snake", "Snake", tt.all); err != nil {
				t.Fatal(err)
			}
			out := buf.String()

			rows := 0
			for _, line := range strings.Split(out, "\n") {
				if strings.HasPrefix(line, "  ") && !strings.HasPrefix(line, "  Rank") && !strings.HasPrefix(line, "  ----") {
					rows++
				}
			}
			if rows != tt.wantRows {
				t.Errorf("listed %d scores, want %d:\n%s", rows, tt.wantRows, out)
			}
			for _, want := range []string{"Best: 12", "Games: 12", "Average: 6.5"} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestPrintPuzzleResults(t *testing.T) {
	store := openScoresStore(t)
	for _, out := range []core.PuzzleOutcome{
		{Variant: 3, Moves: 9},
		{Variant: 3, Moves: 7},
		{Variant: 4, Moves: 15, Assisted: true},
	} {
		if _, err := store.SavePuzzleResult("hanoi", out); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := printPuzzleResults(&buf, store, "hanoi", "Tower of Hanoi"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	best, recent, ok := strings.Cut(out, "Recent Solves")
	if !ok {
		t.Fatalf("recent section missing:\n%s", out)
	}
	if !strings.Contains(best, "  3      7       7") || strings.Contains(best, "  4      ") {
		t.Errorf("best section wrong:\n%s", best)
	}
	if strings.Count(recent, "\n  ") != 3 {
		t.Errorf("recent section should list all three solves:\n%s", recent)
	}
	if !strings.Contains(recent, "solver") || !strings.Contains(recent, "by hand") {
		t.Errorf("recent section should tell assisted solves apart:\n%s", recent)
	}
}

func TestClearRecords(t *testing.T) {
	tests := []struct {
		name   string
		gameID string
		puzzle bool
	}{
		{"scores", "snake", false},
		{"solves", "hanoi", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openScoresStore(t)
			if _, err := store.SaveScore("snake", 5); err != nil {
				t.Fatal(err)
			}
			if _, err := store.SavePuzzleResult("hanoi", core.PuzzleOutcome{Variant: 3, Moves: 7}); err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			if err := clearRecords(&buf, store, tt.gameID, tt.gameID, tt.puzzle); err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(buf.String(), "Cleared all records") {
				t.Errorf("output = %q", buf.String())
			}

			scores, _ := store.AllScores("snake")
			solves, _ := store.RecentPuzzleResults("hanoi", 10)
			if tt.puzzle {
				if len(solves) != 0 || len(scores) != 1 {
					t.Errorf("after clearing solves: %d scores, %d solves", len(scores), len(solves))
				}
			} else if len(scores) != 0 || len(solves) != 1 {
				t.Errorf("after clearing scores: %d scores, %d solves", len(scores), len(solves))
			}
		})
	}
}
