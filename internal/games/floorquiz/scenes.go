package floorquiz

import (
	"github.com/vovakirdan/floor-quiz/internal/core"
	"github.com/vovakirdan/floor-quiz/internal/quiz"
	"github.com/vovakirdan/floor-quiz/internal/scene"
)

// titleScene waits for the player to start.
type titleScene struct {
	game *Game
}

func (s *titleScene) Enter(scene.Params) {}

func (s *titleScene) Step(m *scene.Manager, in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		_ = m.Go(SceneGame, nil)
	}
}

// playScene is one quiz session.
type playScene struct {
	game *Game

	score     Score
	countdown *Countdown // nil in practice mode
	entry     *FloorEntry

	question  quiz.Question
	floor     int  // Last pressed floor, shown on the display
	pressed   bool // Whether floor holds a press yet
	highlight int  // Hovered button index, -1 for none
	flash     int  // Ticks left with the score shown red

	correct int
	wrong   int
	ticks   int // Ticks played in this session
}

func newPlayScene(g *Game) *playScene {
	s := &playScene{game: g, highlight: -1}
	s.entry = NewFloorEntry(g.cfg.Panel.Buttons, s.windowTicks())
	if g.mode == ModeTimed {
		s.countdown = NewCountdown(g.cfg.Timer.Seconds, g.runtime.TickRate)
	}
	return s
}

func (s *playScene) windowTicks() int {
	if s.game.cfg.Timer.DigitWindowMs == 0 {
		return 0
	}
	return s.game.runtime.TicksFor(s.game.cfg.Timer.DigitWindowMs)
}

// Enter starts a fresh session: score and timer reset, new question.
func (s *playScene) Enter(scene.Params) {
	s.score.Reset()
	if s.countdown != nil {
		s.countdown.Reset()
	}
	s.entry.Clear()
	s.floor = 0
	s.pressed = false
	s.highlight = -1
	s.flash = 0
	s.correct = 0
	s.wrong = 0
	s.ticks = 0
	_ = s.game.gen.SetOperandMax(s.operandMax())
	s.question = s.game.gen.Next()
}

// operandMax is the operand bound for the current score and elapsed ticks.
func (s *playScene) operandMax() int {
	base := s.game.cfg.Questions.OperandMax
	if !s.game.difficulty.IsEnabled() {
		return base
	}
	return s.game.difficulty.OperandMax(base, s.score.Get(), s.ticks)
}

func (s *playScene) Step(m *scene.Manager, in core.InputFrame) {
	s.ticks++
	panel := s.game.panel

	// Pointer: hover follows motion, a click presses the button under it
	if in.Pointer.Moved || in.Pointer.Clicked {
		s.highlight = panel.IndexAt(in.Pointer.X, in.Pointer.Y)
	}
	if in.Pointer.Clicked && s.highlight >= 0 {
		s.press(m, panel.Floor(s.highlight))
	}

	// Keyboard cursor
	for _, dir := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(dir) {
			s.highlight = panel.Move(s.highlight, dir)
		}
	}
	if in.Has(core.ActionConfirm) && s.highlight >= 0 {
		s.press(m, panel.Floor(s.highlight))
	}

	// Typed floors
	for _, d := range in.Digits {
		for _, f := range s.entry.Type(d) {
			s.press(m, f)
		}
	}
	if f, ok := s.entry.Step(); ok {
		s.press(m, f)
	}

	if s.flash > 0 {
		s.flash--
	}

	if s.countdown == nil {
		if in.Has(core.ActionBack) {
			s.finish(m)
		}
		return
	}

	s.countdown.Step()
	if s.countdown.Expired() {
		m.Emit(core.Event{Kind: core.EventTimeUp, Value: s.score.Get()})
		s.finish(m)
	}
}

// press handles one elevator button press.
func (s *playScene) press(m *scene.Manager, floor int) {
	s.floor = floor
	s.pressed = true

	if floor == s.question.Answer() {
		s.score.Increment(1)
		s.correct++
		m.Emit(core.Event{Kind: core.EventCorrect, Value: floor})
	} else {
		s.score.Decrement(1)
		s.wrong++
		s.flash = s.game.runtime.TicksFor(s.game.cfg.Feedback.FlashMs)
		m.Emit(core.Event{Kind: core.EventWrong, Value: floor})
	}

	// An infeasible bound keeps the previous one
	_ = s.game.gen.SetOperandMax(s.operandMax())
	s.question = s.game.gen.Next()
}

func (s *playScene) stats() Stats {
	return Stats{
		Score:       s.score.Get(),
		Correct:     s.correct,
		Wrong:       s.wrong,
		DurationSec: s.ticks / s.game.runtime.TickRate,
	}
}

func (s *playScene) finish(m *scene.Manager) {
	st := s.stats()
	_ = m.Go(SceneGameOver, scene.Params{
		"score":    st.Score,
		"correct":  st.Correct,
		"wrong":    st.Wrong,
		"duration": st.DurationSec,
	})
}

// gameOverScene shows the final score until the player restarts.
type gameOverScene struct {
	game  *Game
	score int
	stats Stats
}

func (s *gameOverScene) Enter(p scene.Params) {
	s.score = p.Int("score", 0)
	s.stats = Stats{
		Score:       s.score,
		Correct:     p.Int("correct", 0),
		Wrong:       p.Int("wrong", 0),
		DurationSec: p.Int("duration", 0),
	}
}

func (s *gameOverScene) Step(m *scene.Manager, in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		_ = m.Go(SceneGame, nil)
	}
}
