package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-platformer/internal/config"
	"github.com/vovakirdan/retro-platformer/internal/games/platformer"
	"github.com/vovakirdan/retro-platformer/internal/platform/tui"
	"github.com/vovakirdan/retro-platformer/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a level.
Pause a level and press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30 --preset heavy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	menuCmd.Flags().StringVar(&flagPreset, "preset", "", "Physics preset: classic, floaty, heavy")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}

	w, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(w, "platformer")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, logger, terminalConfig(),
		platformer.WithConfigPath(flagConfig),
		platformer.WithPreset(preset),
		platformer.WithLogger(logger),
	)
}
