package floorquiz

// Score is the per-session score counter. It can go negative.
type Score struct {
	value int
}

// Increment adds n.
func (s *Score) Increment(n int) { s.value += n }

// Decrement subtracts n.
func (s *Score) Decrement(n int) { s.value -= n }

// Set replaces the value.
func (s *Score) Set(n int) { s.value = n }

// Get returns the value.
func (s *Score) Get() int { return s.value }

// Reset sets the score back to zero.
func (s *Score) Reset() { s.value = 0 }
