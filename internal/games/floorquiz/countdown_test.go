package floorquiz

import "testing"

func TestCountdownReachesZero(t *testing.T) {
	c := NewCountdown(60, 60)

	seconds := 0
	for range 60 * 60 {
		if c.Step() {
			seconds++
		}
	}
	if seconds != 60 {
		t.Errorf("Seconds elapsed = %d, want 60", seconds)
	}
	if c.Remaining() != 0 || !c.Expired() {
		t.Errorf("Remaining = %d, Expired = %v", c.Remaining(), c.Expired())
	}

	// Stays at zero
	if c.Step() || c.Remaining() != 0 {
		t.Error("Expired countdown should not tick")
	}
}

func TestCountdownSecondBoundary(t *testing.T) {
	c := NewCountdown(3, 10)
	for i := range 9 {
		if c.Step() {
			t.Fatalf("Second elapsed early at tick %d", i+1)
		}
	}
	if !c.Step() {
		t.Fatal("Expected a second on tick 10")
	}
	if c.Remaining() != 2 {
		t.Errorf("Remaining = %d, want 2", c.Remaining())
	}
}

func TestCountdownReset(t *testing.T) {
	c := NewCountdown(2, 1)
	c.Step()
	c.Step()
	if !c.Expired() {
		t.Fatal("Expected expired")
	}
	c.Reset()
	if c.Remaining() != 2 || c.Expired() {
		t.Errorf("After reset: Remaining = %d, Expired = %v", c.Remaining(), c.Expired())
	}
}

func TestScore(t *testing.T) {
	var s Score
	s.Increment(1)
	s.Increment(1)
	s.Decrement(1)
	if s.Get() != 1 {
		t.Errorf("Get = %d, want 1", s.Get())
	}
	s.Decrement(3)
	if s.Get() != -2 {
		t.Errorf("Get = %d, want -2", s.Get())
	}
	s.Set(10)
	if s.Get() != 10 {
		t.Errorf("Get after Set = %d, want 10", s.Get())
	}
	s.Reset()
	if s.Get() != 0 {
		t.Errorf("Get after Reset = %d, want 0", s.Get())
	}
}
