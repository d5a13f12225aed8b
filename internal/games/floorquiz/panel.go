package floorquiz

import "github.com/vovakirdan/floor-quiz/internal/core"

// Panel geometry in cells.
const (
	buttonW    = 6
	buttonH    = 3
	colPitch   = 8 // buttonW plus a two-cell gap
	rowPitch   = 3
	displayH   = 3
	gridTop    = 5 // First button row, below the floor display
	panelPadX  = 2
	minPanelW  = 28
	leftAreaW  = 36 // HUD and question bubble
	footerRows = 1
)

// Button is one floor button and where it sits on screen.
type Button struct {
	Floor int
	Rect  core.Rect
}

// Panel is the elevator button panel on the right side of the screen.
// It is pure layout: it knows where things are, not what they mean.
type Panel struct {
	floors  []int
	columns int
	rows    int

	Area    core.Rect // Whole panel
	Display core.Rect // Current-floor display at the top
	Buttons []Button  // In row-major order, same as floors
}

// NewPanel creates a panel for floors laid out row-major in columns.
func NewPanel(floors []int, columns int) *Panel {
	if columns <= 0 {
		columns = 1
	}
	p := &Panel{
		floors:  append([]int(nil), floors...),
		columns: columns,
		rows:    (len(floors) + columns - 1) / columns,
	}
	p.Buttons = make([]Button, len(floors))
	for i, f := range floors {
		p.Buttons[i].Floor = f
	}
	return p
}

// Width returns the panel width in cells.
func (p *Panel) Width() int {
	return core.Max(minPanelW, p.columns*colPitch+2*panelPadX)
}

// MinSize returns the smallest screen that fits the left area and the panel.
func (p *Panel) MinSize() (w, h int) {
	return leftAreaW + p.Width(), gridTop + p.rows*rowPitch + footerRows + 1
}

// Layout places the panel against the right edge of a screenW x screenH screen.
func (p *Panel) Layout(screenW, screenH int) {
	w := p.Width()
	p.Area = core.NewRect(screenW-w, 0, w, screenH-footerRows)
	p.Display = core.NewRect(p.Area.X+panelPadX, 1, w-2*panelPadX, displayH)

	gridW := p.columns*colPitch - (colPitch - buttonW)
	startX := p.Area.X + (w-gridW)/2
	for i := range p.Buttons {
		row, col := i/p.columns, i%p.columns
		p.Buttons[i].Rect = core.NewRect(startX+col*colPitch, gridTop+row*rowPitch, buttonW, buttonH)
	}
}

// IndexAt returns the index of the button under (x, y), or -1.
func (p *Panel) IndexAt(x, y int) int {
	for i, b := range p.Buttons {
		if b.Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// ButtonAt returns the floor under (x, y), if any.
func (p *Panel) ButtonAt(x, y int) (int, bool) {
	i := p.IndexAt(x, y)
	if i < 0 {
		return 0, false
	}
	return p.Buttons[i].Floor, true
}

// IndexOf returns the index of the button for floor, or -1.
func (p *Panel) IndexOf(floor int) int {
	for i, f := range p.floors {
		if f == floor {
			return i
		}
	}
	return -1
}

// Floor returns the floor of button i. i must be a valid index.
func (p *Panel) Floor(i int) int {
	return p.floors[i]
}

// Len returns the number of buttons.
func (p *Panel) Len() int {
	return len(p.floors)
}

// Move moves a keyboard cursor one step in dir and returns the new index.
// A cursor of -1 (nothing highlighted) lands on the first button.
// Movement is clamped to the grid; stepping into the empty part of a short
// last row lands on its last button.
func (p *Panel) Move(cursor int, dir core.Action) int {
	if len(p.floors) == 0 {
		return -1
	}
	if cursor < 0 || cursor >= len(p.floors) {
		return 0
	}

	row, col := cursor/p.columns, cursor%p.columns
	switch dir {
	case core.ActionUp:
		row--
	case core.ActionDown:
		row++
	case core.ActionLeft:
		col--
	case core.ActionRight:
		col++
	default:
		return cursor
	}
	row = core.Clamp(row, 0, p.rows-1)
	col = core.Clamp(col, 0, p.columns-1)

	next := row*p.columns + col
	if next >= len(p.floors) {
		next = len(p.floors) - 1
	}
	return next
}
