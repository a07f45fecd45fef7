package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-platformer/internal/config"
	"github.com/vovakirdan/retro-platformer/internal/core"
	"github.com/vovakirdan/retro-platformer/internal/games/platformer"
	"github.com/vovakirdan/retro-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/retro-platformer/internal/platform/tui"
	"github.com/vovakirdan/retro-platformer/internal/platform/window"
	"github.com/vovakirdan/retro-platformer/internal/registry"
	"github.com/vovakirdan/retro-platformer/internal/storage"
)

// Renderers accepted by --renderer.
const (
	rendererTUI    = "tui"
	rendererWindow = "window"
)

var (
	flagLevel     string
	flagLevelFile string
	flagPlayDir   string
	flagRenderer  string
	flagConfig    string
	flagPreset    string
	flagFont      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing a level in the terminal or in a desktop window.

Controls:
  Left/A, Right/D   - Move
  Space/Up/W        - Jump
  P                 - Pause
  R                 - Restart
  Q/Ctrl+C (tui)    - Quit
  Esc (window)      - Quit

Presets:
  classic - default physics
  floaty  - lower gravity, softer jump
  heavy   - higher gravity, stronger jump

Examples:
  platformer play
  platformer play --level stairs
  platformer play --level-file ./my-level.tmx
  platformer play --dir ./my-levels --level ridge
  platformer play --renderer window --font ./PressStart2P.ttf
  platformer play --preset floaty --config ./my-physics.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "meadow", "ID of a built-in level")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Load a level from a .yaml or .tmx file")
	playCmd.Flags().StringVar(&flagPlayDir, "dir", "", "Look up --level in this directory of level files")
	playCmd.Flags().StringVar(&flagRenderer, "renderer", rendererTUI, "Front-end: tui or window")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Physics preset: classic, floaty, heavy")
	playCmd.Flags().StringVar(&flagFont, "font", "", "TTF font for the window score display")
	playCmd.MarkFlagsMutuallyExclusive("level", "level-file")
	playCmd.MarkFlagsMutuallyExclusive("dir", "level-file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}
	if flagRenderer != rendererTUI && flagRenderer != rendererWindow {
		return fmt.Errorf("unknown renderer %q (expected tui or window)", flagRenderer)
	}

	lvl, err := selectLevel()
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea while playing in it
	var logger *log.Logger
	if flagRenderer == rendererTUI {
		w, closeLog := openLogFile()
		defer closeLog()
		logger = newLogger(w, "platformer")
	} else {
		logger = newLogger(os.Stderr, "platformer-window")
	}

	game := platformer.New(lvl,
		platformer.WithConfigPath(flagConfig),
		platformer.WithPreset(preset),
		platformer.WithLogger(logger),
	)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if flagRenderer == rendererWindow {
		return window.Run(game, store, logger, window.Options{
			TickRate: flagFPS,
			FontPath: flagFont,
		})
	}

	return tui.Run(game, store, logger, terminalConfig())
}

// selectLevel resolves --level-file, or --level in --dir or the built-ins.
func selectLevel() (platformer.Level, error) {
	if flagLevelFile != "" {
		return levels.LoadPath(flagLevelFile)
	}
	if flagPlayDir != "" {
		return levels.DirLoader(flagPlayDir).LoadByID(flagLevel)
	}
	if !registry.Exists(flagLevel) {
		return platformer.Level{}, fmt.Errorf("unknown level %q, run 'platformer levels' to see available levels", flagLevel)
	}
	return registry.Level(flagLevel)
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}
