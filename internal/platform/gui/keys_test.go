//go:build ebiten

package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/floor-quiz/internal/core"
)

func TestDigitFor(t *testing.T) {
	tests := []struct {
		key   ebiten.Key
		digit int
		ok    bool
	}{
		{ebiten.KeyDigit0, 0, true},
		{ebiten.KeyDigit7, 7, true},
		{ebiten.KeyNumpad3, 3, true},
		{ebiten.KeyA, 0, false},
	}
	for _, tt := range tests {
		d, ok := digitFor(tt.key)
		if d != tt.digit || ok != tt.ok {
			t.Errorf("digitFor(%v) = %d, %v, want %d, %v", tt.key, d, ok, tt.digit, tt.ok)
		}
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyArrowUp, core.ActionUp},
		{ebiten.KeySpace, core.ActionConfirm},
		{ebiten.KeyEscape, core.ActionBack},
		{ebiten.KeyP, core.ActionPause},
	}
	for _, tt := range tests {
		if a, ok := actionFor(tt.key); !ok || a != tt.action {
			t.Errorf("actionFor(%v) = %v, want %v", tt.key, a, tt.action)
		}
	}
	if _, ok := actionFor(ebiten.KeyZ); ok {
		t.Error("Z should not map to an action")
	}
}
