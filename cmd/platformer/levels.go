package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/retro-platformer/internal/registry"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels, or validates and lists every level file
(.yaml, .yml, .tmx) found under a directory.

Examples:
  platformer levels
  platformer levels --dir ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "", "List level files under this directory instead of the built-in levels")
}

func runLevels(_ *cobra.Command, _ []string) error {
	var list []registry.LevelInfo

	if flagLevelsDir != "" {
		loaded, err := levels.DirLoader(flagLevelsDir).LoadAll()
		if err != nil {
			return err
		}
		for _, lvl := range loaded {
			list = append(list, registry.LevelInfo{
				ID:        lvl.ID,
				Title:     lvl.Name,
				Platforms: len(lvl.Platforms),
				Tokens:    len(lvl.Tokens),
			})
		}
	} else {
		list = registry.List()
	}

	if len(list) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, l := range list {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	fmt.Printf("  %-*s  %-*s  %9s  %6s\n", maxIDLen, "ID", maxTitleLen, "Title", "Platforms", "Tokens")
	fmt.Printf("  %-*s  %-*s  %9s  %6s\n", maxIDLen, "--", maxTitleLen, "-----", "---------", "------")

	for _, l := range list {
		fmt.Printf("  %-*s  %-*s  %9d  %6d\n", maxIDLen, l.ID, maxTitleLen, l.Title, l.Platforms, l.Tokens)
	}

	fmt.Println()
	if flagLevelsDir != "" {
		fmt.Println("Run 'platformer play --dir <dir> --level <id>' to play one of these.")
	} else {
		fmt.Println("Run 'platformer play --level <id>' to play a level.")
	}
	return nil
}
