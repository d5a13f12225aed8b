//go:build !ebiten

// Package gui runs the floor quiz in a desktop window with ebiten.
// This build has no window support; rebuild with -tags ebiten.
package gui

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floor-quiz/internal/audio"
	"github.com/vovakirdan/floor-quiz/internal/core"
	"github.com/vovakirdan/floor-quiz/internal/games/floorquiz"
	"github.com/vovakirdan/floor-quiz/internal/storage"
)

// ErrUnavailable is returned by Run when the binary was built without the ebiten tag.
var ErrUnavailable = errors.New("gui: built without window support, rebuild with -tags ebiten")

// Available reports whether this build can open a window.
func Available() bool { return false }

// Run always fails in this build.
func Run(*floorquiz.Game, *storage.Store, audio.Player, core.RuntimeConfig, *log.Logger) error {
	return ErrUnavailable
}
