package components

import (
	"github.com/solview/lumenring/motion"
	"github.com/yohamta/donburi"
)

// DebugPosition is the auto pilot's debug indicator state. Present is the
// explicit "absent" signal: consumers must not draw a stale position.
type DebugPosition struct {
	X, Y    float64
	Present bool
}

// AutoPilotData holds the synthetic pointer generator and its clock.
type AutoPilotData struct {
	Gen     *motion.PathGenerator
	Elapsed float64 // seconds, accumulated from the fixed tick rate
	Debug   DebugPosition
}

var AutoPilot = donburi.NewComponentType[AutoPilotData]()
