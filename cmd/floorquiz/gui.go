package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floor-quiz/internal/games/floorquiz"
	"github.com/vovakirdan/floor-quiz/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui [mode]",
	Short: "Play in a desktop window",
	Long: `Open the quiz in a desktop window. Needs a binary built with -tags ebiten.

Examples:
  go run -tags ebiten ./cmd/floorquiz gui
  floorquiz gui practice --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	guiCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	guiCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runGUI(_ *cobra.Command, args []string) error {
	if !gui.Available() {
		return gui.ErrUnavailable
	}

	gameID, err := resolveMode(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mode := floorquiz.ModeTimed
	if gameID == floorquiz.IDPractice {
		mode = floorquiz.ModePractice
	}
	game, err := floorquiz.NewWithConfig(mode, cfg)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player := newPlayer(cfg.Audio, flagMute)
	defer player.Close()

	if err := gui.Run(game, store, player, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
