package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena/internal/registry"
	"github.com/vovakirdan/arena/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best runs",
	Long: `Display the best runs, ordered by score and then by wave.

Examples:
  arena scores
  arena scores --limit 25
  arena scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "arena"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintf(out, "Cleared all runs for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'arena play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-4s  %-5s  %-8s  %-12s  %s\n", "Rank", "Score", "Wave", "Kills", "Time", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-4s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "----", "-----", "----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-4d  %-5d  %-8s  %-12s  %s\n",
			i+1, r.Score, r.Wave, r.Kills, r.Duration.Round(time.Second), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  |  Runs: %d  |  Deepest wave: %d  |  Kills: %d  |  Avg score: %.0f\n",
		stats.HighScore, stats.RunsCount, stats.BestWave, stats.TotalKills, stats.AvgScore)
	return nil
}
