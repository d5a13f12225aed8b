package core

// Action is a semantic input, abstracted from physical keys and mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move the panel cursor
	ActionDown           // Down arrow, j
	ActionLeft           // Left arrow, h
	ActionRight          // Right arrow, l
	ActionConfirm        // Space, Enter - start / press the highlighted button
	ActionBack           // B, Escape - end a practice session, leave to menu
	ActionPause          // P - pause/unpause the countdown
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state seen during one tick.
type Pointer struct {
	X, Y    int
	Moved   bool // Position is valid for hover
	Clicked bool // Primary button was pressed at X, Y
}

// InputFrame is everything the player did during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
	Digits  []int // Digit keys typed this tick, in order
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// TypeDigit records a digit key. Values outside 0-9 are ignored.
func (f *InputFrame) TypeDigit(d int) {
	if d < 0 || d > 9 {
		return
	}
	f.Digits = append(f.Digits, d)
}

// MovePointer records pointer motion.
func (f *InputFrame) MovePointer(x, y int) {
	f.Pointer.X, f.Pointer.Y = x, y
	f.Pointer.Moved = true
}

// Click records a primary-button press. A click also counts as motion.
func (f *InputFrame) Click(x, y int) {
	f.MovePointer(x, y)
	f.Pointer.Clicked = true
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Digits) == 0 && !f.Pointer.Moved
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Digits = f.Digits[:0]
	f.Pointer = Pointer{}
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Digits = append([]int(nil), f.Digits...)
	clone.Pointer = f.Pointer
	return clone
}
