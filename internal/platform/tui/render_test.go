package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/floor-quiz/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "Score:", core.ColorBrightWhite)
	s.DrawTextColor(7, 0, "5", core.ColorBrightRed)
	s.DrawTextColor(0, 1, "Time: 60", core.ColorGray)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Score: 5") {
		t.Errorf("Line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Time: 60") {
		t.Errorf("Line 1 = %q", lines[1])
	}
	if len([]rune(lines[0])) != 12 {
		t.Errorf("Line width = %d, want 12", len([]rune(lines[0])))
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	sr := NewScreenRenderer(nil)
	for c := core.ColorDefault; c <= core.ColorPanelEdge; c++ {
		if _, ok := sr.styles[c]; !ok {
			t.Errorf("No style for %v", c)
		}
	}
}
