package motion

import "time"

// DefaultQuiescence is how long after the last real pointer-move the
// pointer still counts as user-driven.
const DefaultQuiescence = 150 * time.Millisecond

// Arbiter tracks whether a genuine user pointer currently owns the
// surface. Real pointer-moves arm a decay deadline; pointer-leave drops
// activity immediately. The deadline is a stored instant, not a detached
// timer, so re-arming on every move can never leave a stale expiry behind.
type Arbiter struct {
	quiescence time.Duration
	active     bool
	deadline   time.Time
}

// NewArbiter creates an arbiter in the Idle state. Non-positive quiescence
// falls back to DefaultQuiescence.
func NewArbiter(quiescence time.Duration) *Arbiter {
	if quiescence <= 0 {
		quiescence = DefaultQuiescence
	}
	return &Arbiter{quiescence: quiescence}
}

// PointerMoved records a real pointer-move at now and re-arms the decay
// deadline.
func (a *Arbiter) PointerMoved(now time.Time) {
	a.active = true
	a.deadline = now.Add(a.quiescence)
}

// PointerLeft records the pointer leaving the surface; activity drops
// without waiting for the quiescence window.
func (a *Arbiter) PointerLeft() {
	a.active = false
	a.deadline = time.Time{}
}

// Active reports whether real input owns the pointer at now, flipping to
// Idle once the quiescence window has elapsed since the last move.
func (a *Arbiter) Active(now time.Time) bool {
	if a.active && !now.Before(a.deadline) {
		a.active = false
	}
	return a.active
}
