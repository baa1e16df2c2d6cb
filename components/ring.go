package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RingData is the refractive ring's animation state.
type RingData struct {
	Angle    float64 // current swirl rotation in radians
	Scale    float64 // intro scale, 0..1
	Alpha    float64 // intro alpha, 0..1
	Strength float64 // current refraction displacement, lerped toward target
	Hovered  bool    // pointer is over the ring annulus this tick

	Intro     *gween.Tween // drives Scale/Alpha during the intro
	IntroDone bool
}

var Ring = donburi.NewComponentType[RingData]()
