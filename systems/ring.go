package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/solview/lumenring/assets"
	"github.com/solview/lumenring/components"
	cfg "github.com/solview/lumenring/config"
	"github.com/solview/lumenring/tags"
)

// Package-level probe object for pointer hit-testing. Safe in the
// single-threaded game loop.
var pointerProbe *resolv.Object

// getPointerProbe returns the 1x1 object that follows the pointer through
// the collision space, registering it on first use.
func getPointerProbe(e *ecs.ECS) *resolv.Object {
	if pointerProbe != nil {
		return pointerProbe
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	pointerProbe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	components.Space.Get(spaceEntry).Add(pointerProbe)
	return pointerProbe
}

// UpdateRing advances the ring swirl, plays the intro tween and hit-tests
// the current pointer sample against the ring annulus.
func UpdateRing(e *ecs.ECS) {
	entry, ok := tags.Ring.First(e.World)
	if !ok {
		return
	}
	ring := components.Ring.Get(entry)
	dt := 1.0 / float64(ebiten.TPS())

	ring.Angle += cfg.Ring.SpinSpeed * dt

	if !ring.IntroDone && ring.Intro != nil {
		v, done := ring.Intro.Update(float32(dt))
		ring.Scale = float64(v)
		ring.Alpha = float64(v)
		if done {
			ring.IntroDone = true
			ring.Scale = 1
			ring.Alpha = 1
		}
	}

	ring.Hovered = pointerOverRing(e, entry)

	// Lerp refraction strength toward the hover target.
	target := cfg.Ring.Strength
	if ring.Hovered {
		target += cfg.Ring.HoverBoost
	}
	ring.Strength += (target - ring.Strength) * cfg.Ring.HoverLerp
}

// pointerOverRing does a resolv broadphase against the ring bounds, then
// narrows to the annulus band.
func pointerOverRing(e *ecs.ECS, ringEntry *donburi.Entry) bool {
	ptr := getOrCreatePointer(e)
	probe := getPointerProbe(e)
	if !ptr.Has || probe == nil {
		return false
	}

	obj := components.Object.Get(ringEntry)
	if obj.Object == nil {
		return false
	}

	probe.X, probe.Y = ptr.X, ptr.Y
	probe.Update()
	if check := probe.Check(0, 0, tags.ResolvRing); check == nil {
		return false
	}

	centerX := obj.X + obj.W/2
	centerY := obj.Y + obj.H/2
	d := math.Hypot(ptr.X-centerX, ptr.Y-centerY)
	pad := cfg.Ring.HitboxPad
	return d >= cfg.Ring.InnerRadius-pad && d <= cfg.Ring.OuterRadius+pad
}

// DrawRing runs the refraction pass: src holds the scene under the ring,
// dst receives the composite. Without a shader the scene passes through.
func DrawRing(e *ecs.ECS, dst, src *ebiten.Image) {
	entry, ok := tags.Ring.First(e.World)
	if !ok || assets.RingShader == nil {
		op := &ebiten.DrawImageOptions{}
		dst.DrawImage(src, op)
		return
	}
	ring := components.Ring.Get(entry)

	centerX := float32(cfg.C.Width) / 2
	centerY := float32(cfg.C.Height) / 2
	tint := cfg.Ring.Tint

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Center":      []float32{centerX, centerY},
		"InnerRadius": float32(cfg.Ring.InnerRadius * ring.Scale),
		"OuterRadius": float32(cfg.Ring.OuterRadius * ring.Scale),
		"Angle":       float32(ring.Angle),
		"Strength":    float32(ring.Strength),
		"Alpha":       float32(ring.Alpha),
		"Tint": []float32{
			float32(tint.R) / 255,
			float32(tint.G) / 255,
			float32(tint.B) / 255,
			float32(tint.A) / 255,
		},
	}
	dst.DrawRectShader(src.Bounds().Dx(), src.Bounds().Dy(), assets.RingShader, op)
}

// NewRingIntro builds the intro tween for the ring scale/alpha.
func NewRingIntro() *gween.Tween {
	return gween.New(0, 1, cfg.Ring.IntroDuration, ease.OutCubic)
}
