package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/solview/lumenring/archetypes"
	"github.com/solview/lumenring/assets"
	"github.com/solview/lumenring/components"
	cfg "github.com/solview/lumenring/config"
	"github.com/solview/lumenring/systems"
	"github.com/solview/lumenring/tags"
	"github.com/solview/lumenring/ui"
)

// DemoScene runs the ring-over-title composition with the pointer-driven
// distortion pass and the auto-pilot pointer.
type DemoScene struct {
	ecs   *ecs.ECS
	panel *ui.SettingsUI
	once  sync.Once

	// Offscreen pass targets: frame holds the scene under the ring,
	// composite holds the scene after the ring pass.
	frame     *ebiten.Image
	composite *ebiten.Image
}

// NewDemoScene creates the demo scene.
func NewDemoScene() *DemoScene {
	return &DemoScene{}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if systems.GetOrCreateSettings(ds.ecs).PanelOpen {
		ds.panel.Update()
	}
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ensureBuffers()

	ds.frame.Fill(color.RGBA{R: 8, G: 9, B: 14, A: 255})
	systems.DrawTitle(ds.ecs, ds.frame)
	systems.DrawRing(ds.ecs, ds.composite, ds.frame)
	systems.DrawFluid(ds.ecs, screen, ds.composite)
	systems.DrawDebug(ds.ecs, screen)

	if systems.GetOrCreateSettings(ds.ecs).PanelOpen {
		ds.panel.Draw(screen)
	}
}

func (ds *DemoScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		// The demo still runs without the effects, just undistorted.
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePointer)
	e.AddSystem(systems.UpdateAutoPilot)
	e.AddSystem(systems.UpdateFluid)
	e.AddSystem(systems.UpdateRing)
	e.AddSystem(systems.UpdateSettings)

	// Collision space for pointer hit-testing
	space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16)
	spaceEntry := archetypes.Space.Spawn(e)
	donburi.SetValue(spaceEntry, components.Space, *space)

	// The ring entity with its hover bounds
	ringEntry := archetypes.Ring.Spawn(e)
	bound := (cfg.Ring.OuterRadius + cfg.Ring.HitboxPad) * 2
	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.Height) / 2
	obj := resolv.NewObject(cx-bound/2, cy-bound/2, bound, bound, tags.ResolvRing)
	space.Add(obj)
	components.Object.SetValue(ringEntry, components.ObjectData{Object: obj})

	ring := components.Ring.Get(ringEntry)
	ring.Intro = systems.NewRingIntro()
	ring.Strength = cfg.Ring.Strength

	ds.panel = ui.NewSettingsUI(e)
	ds.ecs = e
}

// ensureBuffers (re)allocates the pass targets to the current viewport.
func (ds *DemoScene) ensureBuffers() {
	w, h := cfg.C.Width, cfg.C.Height
	if ds.frame == nil || ds.frame.Bounds().Dx() != w || ds.frame.Bounds().Dy() != h {
		ds.frame = ebiten.NewImage(w, h)
		ds.composite = ebiten.NewImage(w, h)
	}
}
