package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/solview/lumenring/components"
	cfg "github.com/solview/lumenring/config"
	"github.com/solview/lumenring/motion"
)

// UpdatePointer polls the real cursor, feeds the activity arbiter and
// pushes real pointer samples. Must run first each tick so the arbiter
// state is fresh before the auto pilot gates on it.
func UpdatePointer(e *ecs.ECS) {
	ptr := getOrCreatePointer(e)
	ptr.BeginFrame()

	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < cfg.C.Width && y < cfg.C.Height
	now := time.Now()

	if !inside {
		if ptr.RealInside {
			// Pointer-leave: drop activity without waiting for decay.
			ptr.Arbiter.PointerLeft()
			ptr.RealInside = false
		}
		return
	}

	moved := !ptr.RealInside || x != ptr.RealX || y != ptr.RealY
	ptr.RealX, ptr.RealY = x, y
	ptr.RealInside = true

	if moved {
		ptr.Arbiter.PointerMoved(now)
		ptr.Push(float64(x), float64(y))
	}
}

// getOrCreatePointer returns the singleton Pointer component, creating it
// with an idle arbiter if needed.
func getOrCreatePointer(e *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pointer))
		components.Pointer.Get(entry).Arbiter = motion.NewArbiter(motion.DefaultQuiescence)
	}
	return components.Pointer.Get(entry)
}
