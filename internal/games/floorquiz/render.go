package floorquiz

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/floor-quiz/internal/core"
)

// Render draws the current state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.scenes == nil {
		return
	}

	if g.tooSmall {
		minW, minH := g.panel.MinSize()
		renderOverlay(dst, "Window too small", fmt.Sprintf("Resize to at least %dx%d", minW, minH))
		return
	}

	g.scenes.Render(dst)

	if g.paused {
		renderOverlay(dst, "Paused", "P to resume, B for menu")
	}
}

// renderOverlay draws a centered two-line box over everything else.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	box := core.NewRect(0, 0, maxLen+4, 5)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.BorderSingle, core.ColorDefault)
	dst.DrawTextIn(box, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextIn(box, box.Y+3, line2, core.ColorGray)
}

func (s *titleScene) Render(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-3, "What's the floor?", core.ColorBrightWhite)
	dst.DrawTextCentered(h/2, "Press Space to start", core.ColorDefault)
	dst.DrawTextCentered(h/2+2, "Use the buttons to answer the math questions", core.ColorDefault)
	if s.game.mode == ModePractice {
		dst.DrawTextCentered(h/2+3, "Practice: no timer, Esc to finish", core.ColorYellow)
	}
	dst.DrawTextCentered(h-2, "Made with Bubble Tea", core.ColorGray)
}

func (s *playScene) Render(dst *core.Screen) {
	s.renderHUD(dst)
	s.renderQuestion(dst)
	s.renderPanel(dst)

	hint := "Click or type the floor  Arrows+Enter  P pause  Q quit"
	if s.countdown == nil {
		hint = "Click or type the floor  Arrows+Enter  Esc finish  Q quit"
	}
	dst.DrawTextColor(1, dst.Height()-1, hint, core.ColorGray)
}

// renderHUD draws the score and timer box in the top left.
func (s *playScene) renderHUD(dst *core.Screen) {
	box := core.NewRect(1, 0, 30, 3)
	dst.DrawBox(box, core.BorderRounded, core.ColorDefault)

	scoreColor := core.ColorBrightWhite
	if s.flash > 0 {
		scoreColor = core.ColorBrightRed
	}
	dst.DrawTextColor(box.X+2, box.Y+1, fmt.Sprintf("Score: %d", s.score.Get()), scoreColor)

	if s.countdown != nil {
		timeColor := core.ColorDefault
		if s.countdown.Remaining() <= 10 {
			timeColor = core.ColorYellow
		}
		dst.DrawTextColor(box.X+17, box.Y+1, fmt.Sprintf("Time: %d", s.countdown.Remaining()), timeColor)
	} else {
		dst.DrawTextColor(box.X+17, box.Y+1, "Practice", core.ColorGray)
	}
}

// renderQuestion draws the speech bubble with the current expression.
func (s *playScene) renderQuestion(dst *core.Screen) {
	left := core.NewRect(0, 0, s.game.panel.Area.X, dst.Height())
	text := s.question.String() + " = ?"
	w := core.Max(utf8.RuneCountInString(text)+8, 20)
	bubble := core.NewRect(left.X+(left.W-w)/2, dst.Height()/2-2, w, 5)

	dst.DrawBox(bubble, core.BorderRounded, core.ColorWhite)
	dst.DrawTextIn(bubble, bubble.Y+2, text, core.ColorBrightWhite)
	// Tail pointing down-left toward the speaker
	dst.SetCell(bubble.X+3, bubble.Bottom(), core.Cell{Rune: '╱', Color: core.ColorWhite})
}

// renderPanel draws the elevator panel, the floor display and the buttons.
func (s *playScene) renderPanel(dst *core.Screen) {
	p := s.game.panel
	dst.DrawBox(p.Area, core.BorderSingle, core.ColorGray)

	dst.DrawBox(p.Display, core.BorderHeavy, core.ColorPanelEdge)
	dst.DrawTextIn(p.Display, p.Display.Y+1, s.displayText(), core.ColorBrightGreen)

	for i, b := range p.Buttons {
		style, color := core.BorderRounded, core.ColorGray
		if i == s.highlight {
			style, color = core.BorderHeavy, core.ColorLightGray
		}
		labelColor := core.ColorDefault
		if s.pressed && b.Floor == s.floor {
			labelColor = core.ColorYellow
		}
		dst.DrawBox(b.Rect, style, color)
		dst.DrawTextIn(b.Rect, b.Rect.Y+1, strconv.Itoa(b.Floor), labelColor)
	}
}

// displayText is what the floor display shows: a held digit while typing, else the floor.
func (s *playScene) displayText() string {
	if pending := s.entry.Pending(); pending != "" {
		return pending
	}
	return strconv.Itoa(s.floor)
}

func (s *gameOverScene) Render(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-3, "Game Over", core.ColorBrightWhite)
	dst.DrawTextCentered(h/2-1, fmt.Sprintf("Score: %d", s.score), core.ColorDefault)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Correct: %d  Wrong: %d  Accuracy: %d%%",
		s.stats.Correct, s.stats.Wrong, s.stats.Accuracy()), core.ColorGray)
	dst.DrawTextCentered(h/2+2, "Press Space to restart", core.ColorDefault)
	dst.DrawTextCentered(h-2, "B: menu  Q: quit", core.ColorGray)
}
