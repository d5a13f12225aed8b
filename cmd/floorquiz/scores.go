package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floor-quiz/internal/platform/tui"
	"github.com/vovakirdan/floor-quiz/internal/registry"
	"github.com/vovakirdan/floor-quiz/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a mode (default: floorquiz) with the best
and average score. --tui opens the interactive scoreboard instead.

Examples:
  floorquiz scores
  floorquiz scores practice
  floorquiz scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := resolveMode(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	info, _ := registry.Info(gameID)
	return printScores(cmd.OutOrStdout(), store, info)
}

func printScores(w io.Writer, store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", info.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'floorquiz play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-5s  %s\n", "Rank", "Score", "Correct", "Acc", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-5s  %s\n", "----", "-----", "-------", "---", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		acc := fmt.Sprintf("%d%%", entry.Accuracy())
		fmt.Fprintf(w, "  %-4d  %-6d  %-7d  %-5s  %s\n", i+1, entry.Score, entry.Correct, acc, dateStr)
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(info.ID); err == nil {
		fmt.Fprintf(w, "Best: %d  Average: %.1f  Games: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	}
	return nil
}
