package motion

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise field layout: the speed channel samples row 0 at a slowed time
// coordinate, the jitter channels sample rows 100 and 200 at full speed so
// the three signals stay decorrelated while sharing one seeded field.
const (
	speedTimeScale = 0.2
	jitterRowX     = 100.0
	jitterRowY     = 200.0

	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// Config is the tuning for a single Position call. Callers pass it fresh
// every frame; the generator never caches it.
type Config struct {
	CircleRadius float64 // orbit radius in px, > 0
	SpeedMin     float64 // angular speed lower bound, rad/s
	SpeedMax     float64 // angular speed upper bound, rad/s
	Randomness   float64 // max jitter displacement in px, >= 0
}

// PathGenerator produces a synthetic pointer position from elapsed time:
// a circular orbit whose angular speed wanders between SpeedMin and
// SpeedMax, displaced by smooth positional jitter. Output is deterministic
// for a given seed and continuous in elapsed time.
type PathGenerator struct {
	noise *perlin.Perlin
}

// NewPathGenerator seeds the noise field once. Two generators with the
// same seed produce bit-identical paths.
func NewPathGenerator(seed int64) *PathGenerator {
	return &PathGenerator{
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
	}
}

// Position returns the pointer position for the given elapsed seconds,
// orbiting the center (cx, cy). Inverted speed bounds and negative radii
// are clamped rather than propagated; the result is never NaN.
func (g *PathGenerator) Position(elapsed float64, cfg Config, cx, cy float64) (float64, float64) {
	radius := cfg.CircleRadius
	if radius < 0 {
		radius = 0
	}

	speedNoise := clamp01((g.noise.Noise2D(elapsed*speedTimeScale, 0) + 1) / 2)

	var speed float64
	if cfg.SpeedMax < cfg.SpeedMin {
		speed = math.Max(cfg.SpeedMin, cfg.SpeedMax)
	} else {
		speed = cfg.SpeedMin + (cfg.SpeedMax-cfg.SpeedMin)*speedNoise
	}

	angle := elapsed * speed
	x := cx + radius*math.Cos(angle)
	y := cy + radius*math.Sin(angle)

	if cfg.Randomness > 0 {
		offX := g.noise.Noise2D(elapsed, jitterRowX) * cfg.Randomness
		offY := g.noise.Noise2D(elapsed, jitterRowY) * cfg.Randomness
		// Keep the emitted point within CircleRadius + Randomness of
		// center (Euclidean), whatever the noise amplitudes are.
		if mag := math.Hypot(offX, offY); mag > cfg.Randomness {
			s := cfg.Randomness / mag
			offX *= s
			offY *= s
		}
		x += offX
		y += offY
	}

	if math.IsNaN(x) || math.IsNaN(y) {
		return cx, cy
	}
	return x, y
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
