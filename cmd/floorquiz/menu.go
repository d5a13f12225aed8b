package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floor-quiz/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Open the mode picker. Enter starts the highlighted mode, Tab shows the
scoreboard, Esc on a title or game-over screen returns here.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) error {
	// Validate once up front; every round created from the menu reloads the same settings
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player := newPlayer(cfg.Audio, flagMute)
	defer player.Close()

	if err := tui.RunSession(store, player, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
