// platformer is a 2D side-view platformer that runs in the terminal, in a
// desktop window, or over SSH.
//
// Usage:
//
//	platformer levels              - List available levels
//	platformer play                - Play a level
//	platformer menu                - Pick levels interactively
//	platformer serve               - Start SSH server for remote play
//	platformer scores [level]      - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.platformer/scores.db)
//	--debug         - Log every collected token and respawn
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register built-in levels
	_ "github.com/vovakirdan/retro-platformer/internal/games/platformer/levels"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Retro Platformer - run, jump and collect tokens",
	Long: `Retro Platformer is a small side-view platformer. Steer a square
across floating platforms and collect every token in the level.

Available commands:
  levels   - Show all available levels
  play     - Play a specific level
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  platformer levels
  platformer play
  platformer play --level towers --renderer window
  platformer menu
  platformer serve --ssh :2222
  platformer scores meadow`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates a component logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.platformer/platformer.log for appending. Terminal
// front-ends own the screen, so their logs go to a file.
// The returned close function is always safe to call.
func openLogFile() (io.Writer, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, func() {}
	}
	dir := filepath.Join(home, ".platformer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "platformer.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
