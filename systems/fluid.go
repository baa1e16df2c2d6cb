package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/solview/lumenring/assets"
	"github.com/solview/lumenring/components"
	cfg "github.com/solview/lumenring/config"
)

// UpdateFluid ages the distortion trail and feeds it new pointer samples.
// Runs after both pointer sources so it sees this tick's sample whichever
// origin it came from.
func UpdateFluid(e *ecs.ECS) {
	fl := getOrCreateFluid(e)
	dt := 1.0 / float64(ebiten.TPS())
	fl.Advance(dt, cfg.Fluid.SampleLifetime)

	ptr := getOrCreatePointer(e)
	if !ptr.Moved {
		return
	}

	tps := float64(ebiten.TPS())
	vx := (ptr.X - ptr.PrevX) * tps
	vy := (ptr.Y - ptr.PrevY) * tps
	fl.Push(ptr.X, ptr.Y, vx, vy, cfg.Fluid.TrailCap)
}

// shaderTrailSlots must match the Trail array length in fluid.kage.
const shaderTrailSlots = 24

var fluidUniformTrail [shaderTrailSlots * 4]float32
var fluidUniformAges [shaderTrailSlots]float32

// DrawFluid runs the distortion pass: src is the composited scene, dst the
// screen. With no shader or an empty trail the scene passes through.
func DrawFluid(e *ecs.ECS, dst, src *ebiten.Image) {
	fl := getOrCreateFluid(e)

	n := len(fl.Trail)
	if n > cfg.Fluid.UniformSamples {
		n = cfg.Fluid.UniformSamples
	}
	if n > shaderTrailSlots {
		n = shaderTrailSlots
	}

	if assets.FluidShader == nil || n == 0 {
		op := &ebiten.DrawImageOptions{}
		dst.DrawImage(src, op)
		return
	}

	// Newest samples win the uniform slots.
	newest := fl.Trail[len(fl.Trail)-n:]
	for i, p := range newest {
		fluidUniformTrail[i*4+0] = float32(p.X)
		fluidUniformTrail[i*4+1] = float32(p.Y)
		fluidUniformTrail[i*4+2] = float32(p.VX * cfg.Fluid.VelocityScale)
		fluidUniformTrail[i*4+3] = float32(p.VY * cfg.Fluid.VelocityScale)
		fluidUniformAges[i] = float32(math.Min(p.Age/cfg.Fluid.SampleLifetime, 1))
	}
	for i := n; i < shaderTrailSlots; i++ {
		fluidUniformTrail[i*4+0] = 0
		fluidUniformTrail[i*4+1] = 0
		fluidUniformTrail[i*4+2] = 0
		fluidUniformTrail[i*4+3] = 0
		fluidUniformAges[i] = 1
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Trail":    fluidUniformTrail[:],
		"Ages":     fluidUniformAges[:],
		"TrailLen": n,
		"Strength": float32(cfg.Fluid.Strength),
		"Falloff":  float32(cfg.Fluid.Falloff),
	}
	dst.DrawRectShader(src.Bounds().Dx(), src.Bounds().Dy(), assets.FluidShader, op)
}

// getOrCreateFluid returns the singleton Fluid component, creating if needed
func getOrCreateFluid(e *ecs.ECS) *components.FluidData {
	entry, ok := components.Fluid.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Fluid))
	}
	return components.Fluid.Get(entry)
}
