package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamebox/internal/games/hanoi"
	"github.com/vovakirdan/gamebox/internal/registry"
	"github.com/vovakirdan/gamebox/internal/storage"
)

const recentSolves = 5

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the records of the specified game.

Snake lists its top 10 scores, or every score with --all. Tower of Hanoi
lists the best solve for every disk count followed by the latest solves;
solves that used the solver are not ranked.

--clear deletes every record of the game.

Examples:
  gamebox scores snake
  gamebox scores snake --all
  gamebox scores hanoi
  gamebox scores hanoi --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all records of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'gamebox list' to see available games", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, puzzle := game.(registry.Puzzle)
	w := cmd.OutOrStdout()

	if flagScoresClear {
		return clearRecords(w, store, gameID, game.Title(), puzzle)
	}
	if puzzle {
		return printPuzzleResults(w, store, gameID, game.Title())
	}
	return printScores(w, store, gameID, game.Title(), flagScoresAll)
}

func clearRecords(w io.Writer, store *storage.Store, gameID, title string, puzzle bool) error {
	var err error
	if puzzle {
		err = store.ClearPuzzleResults(gameID)
	} else {
		err = store.ClearScores(gameID)
	}
	if err != nil {
		return err
	}
	log.Info("records cleared", "game", gameID)
	fmt.Fprintf(w, "Cleared all records of %s.\n", title)
	return nil
}

func printPuzzleResults(w io.Writer, store *storage.Store, gameID, title string) error {
	results, err := store.BestPuzzleResults(gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best Solves - %s\n", title)
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No solves recorded yet.")
	} else {
		fmt.Fprintf(w, "  %-5s  %-6s  %-7s  %s\n", "Disks", "Moves", "Optimal", "Date")
		fmt.Fprintf(w, "  %-5s  %-6s  %-7s  %s\n", "-----", "-----", "-------", "----")

		for _, r := range results {
			optimal := hanoi.OptimalMoves(r.Variant)
			mark := ""
			if r.Moves == optimal {
				mark = "  *"
			}
			fmt.Fprintf(w, "  %-5d  %-6d  %-7d  %s%s\n", r.Variant, r.Moves, optimal, r.CreatedAt.Format("2006-01-02 15:04"), mark)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "* optimal solve")
	}

	recent, err := store.RecentPuzzleResults(gameID, recentSolves)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'gamebox play %s' and solve it without the solver!\n", gameID)
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent Solves")
	fmt.Fprintln(w)
	for _, r := range recent {
		how := "by hand"
		if r.Assisted {
			how = "solver"
		}
		fmt.Fprintf(w, "  %-5d  %-6d  %-7s  %s\n", r.Variant, r.Moves, how, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printScores(w io.Writer, store *storage.Store, gameID, title string, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'gamebox play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Fprintf(w, "Best: %d\n", highScore)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(w, "Games: %d  Average: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
