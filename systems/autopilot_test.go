package systems

import (
	"math"
	"testing"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/solview/lumenring/config"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func withMotionConfig(t *testing.T, mc cfg.MotionConfig) {
	t.Helper()
	prev := cfg.Motion
	cfg.Motion = mc
	t.Cleanup(func() { cfg.Motion = prev })
}

func TestAutoPilotPushesWhenIdle(t *testing.T) {
	withMotionConfig(t, cfg.MotionConfig{
		Mode:         cfg.MotionCircular,
		CircleRadius: 150,
		SpeedMin:     0.8,
		SpeedMax:     1.2,
		Randomness:   40,
		Seed:         42,
	})

	e := newTestECS()
	ptr := getOrCreatePointer(e)
	ptr.BeginFrame()

	UpdateAutoPilot(e)

	if !ptr.Moved {
		t.Fatal("expected a synthetic sample with no real activity")
	}
	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.Height) / 2
	dist := math.Hypot(ptr.X-cx, ptr.Y-cy)
	bound := cfg.Motion.CircleRadius + cfg.Motion.Randomness + 1e-6
	if dist > bound {
		t.Fatalf("sample %.2f px from center, want <= %.2f", dist, bound)
	}
}

func TestAutoPilotSuppressedWhenModeOff(t *testing.T) {
	withMotionConfig(t, cfg.MotionConfig{Mode: cfg.MotionOff, DebugEnabled: true})

	e := newTestECS()
	ptr := getOrCreatePointer(e)
	ptr.BeginFrame()

	UpdateAutoPilot(e)

	if ptr.Moved {
		t.Fatal("mode off must not emit synthetic samples")
	}
	if ap := getOrCreateAutoPilot(e); ap.Debug.Present {
		t.Fatal("debug indicator must clear while suppressed")
	}
}

func TestAutoPilotSuppressedByRealActivity(t *testing.T) {
	withMotionConfig(t, cfg.MotionConfig{
		Mode:         cfg.MotionCircular,
		CircleRadius: 150,
		SpeedMin:     1,
		SpeedMax:     1,
	})

	e := newTestECS()
	ptr := getOrCreatePointer(e)
	ptr.BeginFrame()
	ptr.Arbiter.PointerMoved(time.Now())

	UpdateAutoPilot(e)

	if ptr.Moved {
		t.Fatal("a fresh real move must suppress the auto pilot")
	}
}

func TestAutoPilotResumesAfterQuiescence(t *testing.T) {
	withMotionConfig(t, cfg.MotionConfig{
		Mode:         cfg.MotionCircular,
		CircleRadius: 150,
		SpeedMin:     1,
		SpeedMax:     1,
	})

	e := newTestECS()
	ptr := getOrCreatePointer(e)
	ptr.BeginFrame()
	// Real activity whose quiescence window has already expired.
	ptr.Arbiter.PointerMoved(time.Now().Add(-time.Second))

	UpdateAutoPilot(e)

	if !ptr.Moved {
		t.Fatal("auto pilot must resume once the quiescence window passes")
	}
}

func TestAutoPilotDebugIndicator(t *testing.T) {
	withMotionConfig(t, cfg.MotionConfig{
		Mode:         cfg.MotionCircular,
		CircleRadius: 150,
		SpeedMin:     1,
		SpeedMax:     1,
		DebugEnabled: true,
	})

	e := newTestECS()
	getOrCreatePointer(e).BeginFrame()

	UpdateAutoPilot(e)

	ap := getOrCreateAutoPilot(e)
	if !ap.Debug.Present {
		t.Fatal("debug indicator must follow the synthetic pointer when enabled")
	}

	cfg.Motion.DebugEnabled = false
	getOrCreatePointer(e).BeginFrame()
	UpdateAutoPilot(e)
	if ap.Debug.Present {
		t.Fatal("debug indicator must clear when disabled")
	}
}

func TestAutoPilotAdvancesWhileSuppressed(t *testing.T) {
	withMotionConfig(t, cfg.MotionConfig{Mode: cfg.MotionOff})

	e := newTestECS()
	ap := getOrCreateAutoPilot(e)
	before := ap.Elapsed

	UpdateAutoPilot(e)

	if ap.Elapsed <= before {
		t.Fatal("elapsed time must accumulate even while suppressed")
	}
}
