package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/solview/lumenring/components"
	cfg "github.com/solview/lumenring/config"
	"github.com/solview/lumenring/motion"
)

// UpdateAutoPilot drives the synthetic pointer. Runs once per tick, after
// UpdatePointer: if the mode is off or a real pointer is active the
// synthetic output is suppressed and the debug indicator cleared,
// otherwise the generated position is pushed through the same sample
// stream real moves use.
func UpdateAutoPilot(e *ecs.ECS) {
	ap := getOrCreateAutoPilot(e)
	ap.Elapsed += 1.0 / float64(ebiten.TPS())

	ptr := getOrCreatePointer(e)
	mc := cfg.Motion // read fresh every frame, never cached

	if mc.Mode != cfg.MotionCircular || ptr.Arbiter.Active(time.Now()) {
		ap.Debug = components.DebugPosition{}
		return
	}

	centerX := float64(cfg.C.Width) / 2
	centerY := float64(cfg.C.Height) / 2
	x, y := ap.Gen.Position(ap.Elapsed, motion.Config{
		CircleRadius: mc.CircleRadius,
		SpeedMin:     mc.SpeedMin,
		SpeedMax:     mc.SpeedMax,
		Randomness:   mc.Randomness,
	}, centerX, centerY)

	ptr.Push(x, y)

	if mc.DebugEnabled {
		ap.Debug = components.DebugPosition{X: x, Y: y, Present: true}
	} else {
		ap.Debug = components.DebugPosition{}
	}
}

// getOrCreateAutoPilot returns the singleton AutoPilot component, seeding
// the path generator on first use.
func getOrCreateAutoPilot(e *ecs.ECS) *components.AutoPilotData {
	entry, ok := components.AutoPilot.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.AutoPilot))
		components.AutoPilot.Get(entry).Gen = motion.NewPathGenerator(cfg.Motion.Seed)
	}
	return components.AutoPilot.Get(entry)
}
