package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floor-quiz/internal/platform/tui"
	"github.com/vovakirdan/floor-quiz/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: floorquiz).

Modes:
  floorquiz (timed)      - 60 seconds, +1 per right floor, -1 per wrong one
  floorquiz_practice     - no timer, press Esc to finish

Controls:
  Mouse                  - Hover and click floor buttons
  Arrows/HJKL + Space    - Move the cursor and press
  0-9                    - Type a floor number
  P                      - Pause
  Space (game over)      - Play again
  Esc/B                  - Back
  Q/Ctrl+C               - Quit

Difficulty options:
  easy   - 90 seconds, small operands
  normal - The default settings
  hard   - 45 seconds, operands grow with the score
  fixed  - No progression

Examples:
  floorquiz play
  floorquiz play practice
  floorquiz play --difficulty hard
  floorquiz play --config ./my-floorquiz.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := resolveMode(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player := newPlayer(cfg.Audio, flagMute)
	defer player.Close()

	logger.Debug("starting game", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, player, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
