package floorquiz

// Countdown counts whole seconds down from a start value using simulation ticks.
type Countdown struct {
	start     int
	remaining int
	tickRate  int
	sub       int // Ticks into the current second
}

// NewCountdown creates a countdown of seconds at tickRate ticks per second.
func NewCountdown(seconds, tickRate int) *Countdown {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Countdown{start: seconds, remaining: seconds, tickRate: tickRate}
}

// Step advances one tick. It returns true when a whole second elapsed on this tick.
// An expired countdown stays at zero.
func (c *Countdown) Step() bool {
	if c.remaining <= 0 {
		return false
	}
	c.sub++
	if c.sub < c.tickRate {
		return false
	}
	c.sub = 0
	c.remaining--
	return true
}

// Remaining returns the whole seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Expired reports whether the countdown reached zero.
func (c *Countdown) Expired() bool { return c.remaining <= 0 }

// Reset restarts the countdown from its start value.
func (c *Countdown) Reset() {
	c.remaining = c.start
	c.sub = 0
}
