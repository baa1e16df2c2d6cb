package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/solview/lumenring/components"
	cfg "github.com/solview/lumenring/config"
)

// DrawDebug renders the synthetic pointer indicator: a crosshair at the
// last emitted position, the orbit circle, and the live trail. Draws
// nothing when the indicator is absent.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.AutoPilot.First(e.World)
	if !ok {
		return
	}
	ap := components.AutoPilot.Get(entry)
	if !ap.Debug.Present {
		return
	}

	if cfg.Debug.ShowOrbit {
		cx := float32(cfg.C.Width) / 2
		cy := float32(cfg.C.Height) / 2
		vector.StrokeCircle(screen, cx, cy, float32(cfg.Motion.CircleRadius), 1, cfg.Debug.OrbitColor, true)
	}

	if cfg.Debug.ShowTrail {
		fl := getOrCreateFluid(e)
		for i := 1; i < len(fl.Trail); i++ {
			a := fl.Trail[i-1]
			b := fl.Trail[i]
			vector.StrokeLine(screen,
				float32(a.X), float32(a.Y),
				float32(b.X), float32(b.Y),
				1, cfg.Debug.TrailColor, true)
		}
	}

	x := float32(ap.Debug.X)
	y := float32(ap.Debug.Y)
	s := float32(cfg.Debug.CrosshairSize)
	vector.StrokeLine(screen, x-s, y, x+s, y, 1, cfg.Debug.CrosshairColor, true)
	vector.StrokeLine(screen, x, y-s, x, y+s, 1, cfg.Debug.CrosshairColor, true)
}
