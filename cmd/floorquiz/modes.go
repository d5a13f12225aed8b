package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/floor-quiz/internal/audio"
	"github.com/vovakirdan/floor-quiz/internal/config"
	"github.com/vovakirdan/floor-quiz/internal/core"
	"github.com/vovakirdan/floor-quiz/internal/games/floorquiz"
	"github.com/vovakirdan/floor-quiz/internal/registry"
	"github.com/vovakirdan/floor-quiz/internal/storage"
)

// modeAliases lets users type the short mode names.
var modeAliases = map[string]string{
	"timed":    floorquiz.IDTimed,
	"practice": floorquiz.IDPractice,
}

// resolveMode turns a mode argument into a registered game ID.
func resolveMode(args []string) (string, error) {
	if len(args) == 0 {
		return floorquiz.IDTimed, nil
	}
	id := args[0]
	if alias, ok := modeAliases[id]; ok {
		id = alias
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown mode %q, run 'floorquiz list' to see available modes", args[0])
	}
	return id, nil
}

// runtimeConfig builds the runtime config from global flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. A failure is a warning; the game still runs.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "err", err)
		return nil
	}
	return store
}

// newPlayer starts audio. Without a sound device the game stays silent.
func newPlayer(cfg config.AudioConfig, mute bool) audio.Player {
	if mute {
		return audio.Nop{}
	}
	sm := audio.NewSoundManager(cfg, logger.WithPrefix("audio"))
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing without sound", "err", err)
		return audio.Nop{}
	}
	return sm
}

// loadConfig applies --config and --difficulty and validates the result.
func loadConfig() (config.FloorQuizConfig, error) {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return config.FloorQuizConfig{}, fmt.Errorf("unknown difficulty %q, want easy, normal, hard or fixed", flagDifficulty)
		}
	}
	floorquiz.SetConfigPath(flagConfig)
	floorquiz.SetDifficultyPreset(flagDifficulty)

	cfg, err := floorquiz.LoadConfig()
	if err != nil {
		return cfg, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}
