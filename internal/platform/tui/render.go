package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/floor-quiz/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes. Empty means the terminal default.
var colorCodes = map[core.Color]string{
	core.ColorDefault:     "",
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorWhite:       "7",
	core.ColorBlack:       "0",
	core.ColorBrightRed:   "9",
	core.ColorBrightGreen: "10",
	core.ColorBrightWhite: "15",
	core.ColorGray:        "248", // #aeaeae
	core.ColorLightGray:   "253", // #dedede
	core.ColorPanelEdge:   "65",  // #447744
}

// ScreenRenderer converts Screen buffers to styled strings for one output.
// SSH sessions each get their own so color support follows the client terminal.
type ScreenRenderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer builds styles on r. A nil r uses the process default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[core.Color]lipgloss.Style, len(colorCodes))
	for c, code := range colorCodes {
		style := r.NewStyle()
		if code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		if c == core.ColorBrightWhite {
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return &ScreenRenderer{styles: styles}
}

var defaultRenderer = NewScreenRenderer(nil)

// RenderScreen converts a Screen buffer with the default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultRenderer.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := sr.styles[startColor]
			if !ok {
				style = sr.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
