package floorquiz

import "strconv"

// FloorEntry turns typed digits into floor presses.
//
// A digit that could begin a two-digit floor ("1" for 10-12) is held for a
// short window so the second digit can follow. Any other digit that names a
// floor is pressed at once.
type FloorEntry struct {
	floors  map[int]bool
	prefix  map[int]bool // Digits that start a two-digit floor
	window  int          // Ticks to wait for a second digit
	pending int
	left    int // Ticks until pending commits; 0 means nothing pending
}

// NewFloorEntry builds an entry for the given floors. window is in ticks.
func NewFloorEntry(floors []int, window int) *FloorEntry {
	e := &FloorEntry{
		floors: make(map[int]bool, len(floors)),
		prefix: make(map[int]bool),
		window: window,
	}
	for _, f := range floors {
		e.floors[f] = true
		if f >= 10 {
			e.prefix[f/10] = true
		}
	}
	return e
}

// Type feeds one digit and returns the floors pressed as a result, in order.
func (e *FloorEntry) Type(d int) []int {
	var pressed []int

	if e.left > 0 {
		candidate := e.pending*10 + d
		e.left = 0
		if e.floors[candidate] {
			return []int{candidate}
		}
		// Not a two-digit floor: the held digit stands alone, then d is handled fresh
		if e.floors[e.pending] {
			pressed = append(pressed, e.pending)
		}
	}

	if e.prefix[d] && e.window > 0 {
		e.pending = d
		e.left = e.window
		return pressed
	}
	if e.floors[d] {
		pressed = append(pressed, d)
	}
	return pressed
}

// Step advances the entry window by one tick and returns a floor if the held digit committed.
func (e *FloorEntry) Step() (int, bool) {
	if e.left == 0 {
		return 0, false
	}
	e.left--
	if e.left > 0 {
		return 0, false
	}
	return e.pending, e.floors[e.pending]
}

// Pending returns the held digit as display text ("1_"), or "" when nothing is held.
func (e *FloorEntry) Pending() string {
	if e.left == 0 {
		return ""
	}
	return strconv.Itoa(e.pending) + "_"
}

// Clear drops any held digit.
func (e *FloorEntry) Clear() {
	e.left = 0
}
