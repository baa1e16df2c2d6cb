package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/solview/lumenring/config"
)

func TestFluidCapturesPointerVelocity(t *testing.T) {
	e := newTestECS()
	ptr := getOrCreatePointer(e)
	ptr.BeginFrame()
	ptr.Push(100, 100)
	ptr.Push(110, 104)

	UpdateFluid(e)

	fl := getOrCreateFluid(e)
	if len(fl.Trail) != 1 {
		t.Fatalf("trail length = %d, want 1", len(fl.Trail))
	}
	tps := float64(ebiten.TPS())
	p := fl.Trail[0]
	if p.VX != 10*tps || p.VY != 4*tps {
		t.Fatalf("velocity = (%v, %v), want (%v, %v)", p.VX, p.VY, 10*tps, 4*tps)
	}
}

func TestSyntheticSampleFeedsTrail(t *testing.T) {
	withMotionConfig(t, cfg.MotionConfig{
		Mode:         cfg.MotionCircular,
		CircleRadius: 150,
		SpeedMin:     1,
		SpeedMax:     1,
	})

	e := newTestECS()
	getOrCreatePointer(e).BeginFrame()

	UpdateAutoPilot(e)
	UpdateFluid(e)

	if n := len(getOrCreateFluid(e).Trail); n != 1 {
		t.Fatalf("trail length = %d, want 1 from the synthetic sample", n)
	}
}

func TestFluidIgnoresStillPointer(t *testing.T) {
	e := newTestECS()
	ptr := getOrCreatePointer(e)
	ptr.Push(100, 100)
	ptr.BeginFrame()

	UpdateFluid(e)

	if n := len(getOrCreateFluid(e).Trail); n != 0 {
		t.Fatalf("trail length = %d, want 0 with no movement this tick", n)
	}
}
