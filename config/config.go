package config

import "image/color"

// MotionMode selects how the auto pilot drives the pointer.
type MotionMode int

const (
	MotionOff MotionMode = iota
	MotionCircular
)

// MotionConfig tunes the auto-pilot pointer. The settings panel mutates it
// at runtime; systems read it fresh every frame and never cache it.
type MotionConfig struct {
	Mode         MotionMode
	CircleRadius float64 // orbit radius in px
	SpeedMin     float64 // angular speed lower bound, rad/s
	SpeedMax     float64 // angular speed upper bound, rad/s
	Randomness   float64 // max jitter displacement in px
	DebugEnabled bool    // show the synthetic pointer indicator
	Seed         int64   // noise seed, fixed per run
}

// RingConfig tunes the refractive ring.
type RingConfig struct {
	OuterRadius     float64 // px
	InnerRadius     float64 // px
	SpinSpeed       float64 // rad/s, visual swirl rotation
	Strength        float64 // base refraction displacement in px
	HoverBoost      float64 // extra displacement while the pointer is over the ring
	HoverLerp       float64 // per-frame lerp toward the hover target (0..1)
	IntroDuration   float32 // seconds for the scale/alpha intro tween
	Tint            color.RGBA
	HitboxPad       float64 // extra px around the ring bounds for hover hit-testing
}

// FluidConfig tunes the pointer-driven distortion trail.
type FluidConfig struct {
	TrailCap       int     // max retained pointer samples
	SampleLifetime float64 // seconds before a sample fully fades
	Strength       float64 // distortion gain applied to the summed offsets
	Falloff        float64 // gaussian falloff radius in px
	VelocityScale  float64 // scales sample velocity into displacement
	UniformSamples int     // samples uploaded to the shader per frame
}

// TitleConfig tunes the headline text the ring floats over.
type TitleConfig struct {
	Text      string
	SubText   string
	Color     color.RGBA
	SubColor  color.RGBA
	TitleY    float64
	SubTextY  float64
}

// DebugConfig holds debug overlay tuning. Whether the overlay shows at all
// is Motion.DebugEnabled; these control how it looks.
type DebugConfig struct {
	CrosshairSize  float64
	CrosshairColor color.RGBA
	OrbitColor     color.RGBA
	TrailColor     color.RGBA
	ShowOrbit      bool
	ShowTrail      bool
}

// Config holds general window configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Motion MotionConfig
var Ring RingConfig
var Fluid FluidConfig
var Title TitleConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ice       = color.RGBA{R: 190, G: 225, B: 255, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DimWhite  = color.RGBA{R: 160, G: 160, B: 175, A: 255}
	HotOrange = color.RGBA{R: 255, G: 140, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "lumenring",
	}

	Motion = MotionConfig{
		Mode:         MotionCircular,
		CircleRadius: 150,
		SpeedMin:     0.8,
		SpeedMax:     1.2,
		Randomness:   40,
		DebugEnabled: false,
		Seed:         42,
	}

	Ring = RingConfig{
		OuterRadius:   190,
		InnerRadius:   120,
		SpinSpeed:     0.35,
		Strength:      18.0,
		HoverBoost:    14.0,
		HoverLerp:     0.08,
		IntroDuration: 1.4,
		Tint:          Ice,
		HitboxPad:     8,
	}

	Fluid = FluidConfig{
		TrailCap:       48,
		SampleLifetime: 0.9,
		Strength:       1.2,
		Falloff:        90.0,
		VelocityScale:  0.02,
		UniformSamples: 24,
	}

	Title = TitleConfig{
		Text:     "LUMEN",
		SubText:  "move the pointer, or let it wander",
		Color:    White,
		SubColor: DimWhite,
		TitleY:   300,
		SubTextY: 500,
	}

	Debug = DebugConfig{
		CrosshairSize:  7,
		CrosshairColor: Magenta,
		OrbitColor:     color.RGBA{R: 255, G: 0, B: 255, A: 70},
		TrailColor:     color.RGBA{R: 80, G: 200, B: 255, A: 160},
		ShowOrbit:      true,
		ShowTrail:      true,
	}
}
