package motion

import (
	"testing"
	"time"
)

func TestArbiterStartsIdle(t *testing.T) {
	a := NewArbiter(DefaultQuiescence)
	if a.Active(time.Now()) {
		t.Fatal("new arbiter reported active before any pointer input")
	}
}

// TestArbiterDecay pins the decay window: a move at t=0 keeps the arbiter
// active at t=0.1s and idle again at t=0.2s.
func TestArbiterDecay(t *testing.T) {
	a := NewArbiter(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	a.PointerMoved(t0)
	if !a.Active(t0.Add(100 * time.Millisecond)) {
		t.Error("expected active 100ms after a move")
	}
	if a.Active(t0.Add(200 * time.Millisecond)) {
		t.Error("expected idle 200ms after the last move")
	}
}

func TestArbiterLeaveSuppressesImmediately(t *testing.T) {
	a := NewArbiter(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	a.PointerMoved(t0)
	a.PointerLeft()
	if a.Active(t0.Add(time.Millisecond)) {
		t.Fatal("expected idle immediately after pointer-leave")
	}
}

// TestArbiterDebounce verifies N moves inside the quiescence window yield
// exactly one Idle->Active and one Active->Idle transition, the latter
// measured from the last move.
func TestArbiterDebounce(t *testing.T) {
	a := NewArbiter(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	moves := []time.Duration{0, 50 * time.Millisecond, 100 * time.Millisecond}

	transitions := 0
	prev := a.Active(t0.Add(-time.Millisecond))
	if prev {
		t.Fatal("arbiter active before first move")
	}

	last := t0
	for _, d := range moves {
		now := t0.Add(d)
		a.PointerMoved(now)
		last = now
		if cur := a.Active(now); cur != prev {
			transitions++
			prev = cur
		}
	}
	if transitions != 1 {
		t.Fatalf("expected exactly one Idle->Active transition, got %d", transitions)
	}

	// Sample through the decay: still active inside the window, one
	// transition back to idle at its edge, idle ever after.
	transitions = 0
	for d := time.Duration(0); d <= 400*time.Millisecond; d += 10 * time.Millisecond {
		if cur := a.Active(last.Add(d)); cur != prev {
			transitions++
			prev = cur
		}
	}
	if transitions != 1 {
		t.Fatalf("expected exactly one Active->Idle transition, got %d", transitions)
	}
	if a.Active(last.Add(149 * time.Millisecond)) {
		t.Error("expected idle to have latched after the window elapsed")
	}
}

func TestArbiterRearmExtendsWindow(t *testing.T) {
	a := NewArbiter(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	a.PointerMoved(t0)
	a.PointerMoved(t0.Add(140 * time.Millisecond))
	if !a.Active(t0.Add(280 * time.Millisecond)) {
		t.Error("second move should have re-armed the window")
	}
	if a.Active(t0.Add(300 * time.Millisecond)) {
		t.Error("expected idle 150ms after the second move")
	}
}

func TestArbiterDefaultQuiescence(t *testing.T) {
	a := NewArbiter(0)
	t0 := time.Unix(1000, 0)

	a.PointerMoved(t0)
	if !a.Active(t0.Add(100 * time.Millisecond)) {
		t.Error("zero quiescence should fall back to the 150ms default")
	}
	if a.Active(t0.Add(200 * time.Millisecond)) {
		t.Error("default window should have expired after 150ms")
	}
}
