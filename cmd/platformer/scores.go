package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-platformer/internal/registry"
	"github.com/vovakirdan/retro-platformer/internal/storage"
)

var (
	flagClearScores bool
	flagAllScores   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a level, or a summary of every level
that has been played when no level is given.

Examples:
  platformer scores
  platformer scores meadow
  platformer scores meadow --all
  platformer scores stairs --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the level")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded run instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			return fmt.Errorf("--clear needs a level")
		}
		return printSummary(store)
	}

	levelID := args[0]
	if flagClearScores {
		if err := store.ClearScores(levelID); err != nil {
			return err
		}
		fmt.Printf("Scores for %s cleared.\n", levelID)
		return nil
	}
	return printLevelScores(store, levelID)
}

func printLevelScores(store *storage.Store, levelID string) error {
	title := levelID
	if lvl, err := registry.Level(levelID); err == nil && lvl.Name != "" {
		title = lvl.Name
	}

	var scores []storage.ScoreEntry
	var err error
	if flagAllScores {
		scores, err = store.AllScores(levelID)
	} else {
		scores, err = store.TopScores(levelID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play --level %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %s\n", "Rank", "Score", "Time", "Clear", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %s\n", "----", "-----", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-8s  %-5s  %s\n",
			i+1, entry.Score, seconds(entry.Ticks), yesNo(entry.Cleared), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.LevelStats(levelID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Clears: %d   Average: %.1f\n",
		stats.HighScore, stats.Runs, stats.Clears, stats.AvgScore)
	if stats.BestTicks > 0 {
		fmt.Printf("Fastest clear: %s\n", seconds(stats.BestTicks))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllLevelStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-6s  %-6s  %-6s  %-8s  %s\n", "Level", "Best", "Runs", "Clears", "Fastest", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-6s  %-8s  %s\n", "-----", "----", "----", "------", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fastest := "-"
		if s.BestTicks > 0 {
			fastest = seconds(s.BestTicks)
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %-6d  %-8s  %s\n",
			id, s.HighScore, s.Runs, s.Clears, fastest, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// seconds renders a tick count at the configured rate.
func seconds(ticks uint64) string {
	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(rate))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
