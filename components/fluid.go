package components

import "github.com/yohamta/donburi"

// TrailPoint is one aged pointer sample feeding the distortion shader.
type TrailPoint struct {
	X, Y   float64
	VX, VY float64 // px/s at capture time
	Age    float64 // seconds since capture
}

// FluidData is the decaying pointer trail consumed by the fluid
// distortion pass.
type FluidData struct {
	Trail []TrailPoint // oldest first
}

// Push appends a sample, evicting the oldest when the trail is full.
func (f *FluidData) Push(x, y, vx, vy float64, capacity int) {
	if capacity <= 0 {
		return
	}
	if len(f.Trail) >= capacity {
		f.Trail = f.Trail[len(f.Trail)-capacity+1:]
	}
	f.Trail = append(f.Trail, TrailPoint{X: x, Y: y, VX: vx, VY: vy})
}

// Advance ages every sample by dt seconds and drops the fully faded ones.
func (f *FluidData) Advance(dt, lifetime float64) {
	keep := f.Trail[:0]
	for _, p := range f.Trail {
		p.Age += dt
		if p.Age < lifetime {
			keep = append(keep, p)
		}
	}
	f.Trail = keep
}

var Fluid = donburi.NewComponentType[FluidData]()
