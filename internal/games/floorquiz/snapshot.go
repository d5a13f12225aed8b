package floorquiz

// Snapshot is a read-only view of the game for front ends that draw their own
// graphics instead of rendering the cell screen.
type Snapshot struct {
	Tick     uint64
	Mode     Mode
	Scene    string
	Paused   bool
	TooSmall bool

	Score    int
	TimeLeft int // Seconds; -1 in practice mode
	Question string
	Display  string // Floor display text
	Flashing bool   // Score is shown red after a wrong answer

	Highlight int      // Hovered button index, -1 for none
	Buttons   []Button // Cell-space layout, for mapping clicks back into the game

	Stats Stats // Session counts; final values on the game-over scene
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		Paused:    g.paused,
		TooSmall:  g.tooSmall,
		TimeLeft:  -1,
		Highlight: -1,
	}
	if g.scenes == nil {
		return snap
	}

	snap.Scene = g.scenes.Name()
	snap.Score = g.State().Score
	snap.Stats = g.Stats()

	s := g.play
	if s.countdown != nil {
		snap.TimeLeft = s.countdown.Remaining()
	}
	snap.Question = s.question.String()
	snap.Display = s.displayText()
	snap.Flashing = s.flash > 0
	snap.Highlight = s.highlight
	snap.Buttons = append([]Button(nil), g.panel.Buttons...)
	return snap
}
