package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tidal-drop/internal/storage"
)

var (
	flagLimit int
	flagRuns  int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the leaderboard, the best score and statistics over all runs.

Examples:
  tidaldrop scores
  tidaldrop scores --limit 3
  tidaldrop scores --runs 5
  tidaldrop scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLeaderboardSize, "Number of entries to show")
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 0, "Also list this many recent runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the leaderboard and best score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("Leaderboard cleared.")
		return nil
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Tidal Drop - Leaderboard")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tidaldrop play' to set the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, entry.Name, entry.Score, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}
	if stats.Runs > 0 {
		fmt.Printf("Runs: %d  Average: %.1f  Last played: %s\n",
			stats.Runs, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	if flagRuns > 0 {
		return printRecentRuns(store, flagRuns)
	}
	return nil
}

func printRecentRuns(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  %-8d  %-7s  %-8s  %s\n",
			r.Score, r.Difficulty, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
