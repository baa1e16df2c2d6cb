package components

import (
	"github.com/solview/lumenring/motion"
	"github.com/yohamta/donburi"
)

// PointerData is the single pointer sample stream. Real cursor moves and
// the auto pilot push through the same entry point with the same shape, so
// downstream consumers cannot tell them apart.
type PointerData struct {
	X, Y         float64
	PrevX, PrevY float64
	Has          bool // at least one sample ever pushed
	Moved        bool // a sample arrived this tick

	// Real-cursor tracking, written only by the pointer system.
	RealX, RealY int
	RealInside   bool

	// Activity arbiter: fed by the pointer system, consulted by the
	// auto pilot.
	Arbiter *motion.Arbiter
}

// Push records a pointer sample for this tick.
func (p *PointerData) Push(x, y float64) {
	if p.Has {
		p.PrevX, p.PrevY = p.X, p.Y
	} else {
		p.PrevX, p.PrevY = x, y
	}
	p.X, p.Y = x, y
	p.Has = true
	p.Moved = true
}

// BeginFrame resets the per-tick moved flag. The pointer system calls it
// once at the top of every tick, before any source pushes.
func (p *PointerData) BeginFrame() {
	p.Moved = false
}

var Pointer = donburi.NewComponentType[PointerData]()
