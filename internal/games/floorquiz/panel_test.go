package floorquiz

import (
	"testing"

	"github.com/vovakirdan/floor-quiz/internal/config"
	"github.com/vovakirdan/floor-quiz/internal/core"
)

func newDefaultPanel() *Panel {
	p := NewPanel(config.DefaultButtons, 3)
	p.Layout(80, 24)
	return p
}

func TestPanelLayout(t *testing.T) {
	p := newDefaultPanel()

	if p.Len() != 13 {
		t.Fatalf("Len = %d, want 13", p.Len())
	}
	if p.Area.Right() != 80 {
		t.Errorf("Panel right edge = %d, want 80", p.Area.Right())
	}

	for i, b := range p.Buttons {
		if !p.Area.Inset(1).Contains(b.Rect.X, b.Rect.Y) || !p.Area.Inset(1).Contains(b.Rect.Right()-1, b.Rect.Bottom()-1) {
			t.Errorf("Button %d (%d) at %+v is outside the panel %+v", i, b.Floor, b.Rect, p.Area)
		}
		if b.Rect.Y < p.Display.Bottom() {
			t.Errorf("Button %d overlaps the display", i)
		}
		for j := i + 1; j < len(p.Buttons); j++ {
			o := p.Buttons[j].Rect
			if b.Rect.X < o.Right() && o.X < b.Rect.Right() && b.Rect.Y < o.Bottom() && o.Y < b.Rect.Bottom() {
				t.Errorf("Buttons %d and %d overlap", i, j)
			}
		}
	}

	// Row-major order: 10 11 12 on the top row, 0 alone at the bottom left
	top := p.Buttons[p.IndexOf(10)].Rect
	if p.Buttons[p.IndexOf(12)].Rect.Y != top.Y || p.Buttons[p.IndexOf(12)].Rect.X <= top.X {
		t.Error("12 should sit right of 10 on the top row")
	}
	zero := p.Buttons[p.IndexOf(0)].Rect
	if zero.X != top.X || zero.Y <= p.Buttons[p.IndexOf(1)].Rect.Y {
		t.Error("0 should sit below 1 in the first column")
	}
}

func TestPanelMinSize(t *testing.T) {
	p := NewPanel(config.DefaultButtons, 3)
	w, h := p.MinSize()
	if w != 64 || h != 22 {
		t.Errorf("MinSize = %dx%d, want 64x22", w, h)
	}

	p.Layout(w, h)
	last := p.Buttons[len(p.Buttons)-1].Rect
	if last.Bottom() >= h-1 {
		t.Errorf("Bottom button reaches row %d on a %d-row screen", last.Bottom(), h)
	}
}

func TestPanelButtonAt(t *testing.T) {
	p := newDefaultPanel()

	for _, b := range p.Buttons {
		c := b.Rect.Center()
		got, ok := p.ButtonAt(c.X, c.Y)
		if !ok || got != b.Floor {
			t.Errorf("ButtonAt(center of %d) = %d, %v", b.Floor, got, ok)
		}
		// Corners are part of the button
		if got, ok := p.ButtonAt(b.Rect.X, b.Rect.Y); !ok || got != b.Floor {
			t.Errorf("ButtonAt(corner of %d) = %d, %v", b.Floor, got, ok)
		}
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"left area", 5, 10},
		{"display", p.Display.X + 1, p.Display.Y + 1},
		{"gap between buttons", p.Buttons[0].Rect.Right(), p.Buttons[0].Rect.Y + 1},
		{"off screen", -1, -1},
	}
	for _, tt := range tests {
		if _, ok := p.ButtonAt(tt.x, tt.y); ok {
			t.Errorf("%s: ButtonAt(%d, %d) hit a button", tt.name, tt.x, tt.y)
		}
	}
}

func TestPanelMove(t *testing.T) {
	p := newDefaultPanel()
	idx := func(floor int) int { return p.IndexOf(floor) }

	tests := []struct {
		name string
		from int
		dir  core.Action
		want int
	}{
		{"nothing highlighted lands on first", -1, core.ActionDown, 0},
		{"right", idx(10), core.ActionRight, idx(11)},
		{"down", idx(11), core.ActionDown, idx(8)},
		{"left at edge stays", idx(7), core.ActionLeft, idx(7)},
		{"up at top stays", idx(12), core.ActionUp, idx(12)},
		{"down into short row", idx(3), core.ActionDown, idx(0)},
		{"right in short row stays", idx(0), core.ActionRight, idx(0)},
		{"down at bottom stays", idx(0), core.ActionDown, idx(0)},
		{"up from zero", idx(0), core.ActionUp, idx(1)},
		{"non-direction keeps cursor", idx(5), core.ActionConfirm, idx(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Move(tt.from, tt.dir); got != tt.want {
				t.Errorf("Move(%d, %v) = %d, want %d", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestPanelWideGrid(t *testing.T) {
	p := NewPanel([]int{1, 2, 3, 4, 5}, 5)
	if p.Width() < 5*buttonW {
		t.Errorf("Width = %d, too narrow for 5 columns", p.Width())
	}
	p.Layout(100, 24)
	for _, b := range p.Buttons {
		if b.Rect.Right() > p.Area.Right() {
			t.Errorf("Button %d runs past the panel", b.Floor)
		}
	}
}
