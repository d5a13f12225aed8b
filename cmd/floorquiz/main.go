// floorquiz is an elevator math quiz for the terminal: answer each question
// by pressing the floor button showing the result.
//
// Usage:
//
//	floorquiz play [mode]       - Play a mode (default: floorquiz)
//	floorquiz menu              - Pick a mode interactively
//	floorquiz scores [mode]     - Show high scores
//	floorquiz list              - List modes
//	floorquiz serve             - Start SSH server for remote play
//	floorquiz gui [mode]        - Play in a desktop window (-tags ebiten builds)
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible questions
//	--db <path>         - Set database path (default: ~/.floorquiz/scores.db)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floor-quiz/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "floorquiz",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floorquiz",
	Short: "What's the Floor? - an elevator math quiz",
	Long: `What's the Floor? shows a math question next to an elevator panel.
Press the floor button that matches the answer before the time runs out.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  list     - Show all modes
  serve    - Start SSH server for remote play
  gui      - Play in a desktop window

Examples:
  floorquiz play
  floorquiz play practice
  floorquiz menu
  floorquiz serve --ssh :2222
  floorquiz scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(guiCmd)
}
