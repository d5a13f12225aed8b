//go:build ebiten

package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/floor-quiz/internal/core"
)

// digitFor maps number row and keypad keys to digits.
func digitFor(k ebiten.Key) (int, bool) {
	switch {
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return int(k - ebiten.KeyDigit0), true
	case k >= ebiten.KeyNumpad0 && k <= ebiten.KeyNumpad9:
		return int(k - ebiten.KeyNumpad0), true
	}
	return 0, false
}

// actionFor mirrors the terminal key bindings.
func actionFor(k ebiten.Key) (core.Action, bool) {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyK:
		return core.ActionUp, true
	case ebiten.KeyArrowDown, ebiten.KeyJ:
		return core.ActionDown, true
	case ebiten.KeyArrowLeft, ebiten.KeyH:
		return core.ActionLeft, true
	case ebiten.KeyArrowRight, ebiten.KeyL:
		return core.ActionRight, true
	case ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return core.ActionConfirm, true
	case ebiten.KeyEscape, ebiten.KeyB:
		return core.ActionBack, true
	case ebiten.KeyP:
		return core.ActionPause, true
	}
	return core.ActionNone, false
}
