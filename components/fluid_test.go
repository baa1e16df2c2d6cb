package components

import "testing"

func TestFluidPushEvictsOldest(t *testing.T) {
	f := &FluidData{}
	for i := 0; i < 6; i++ {
		f.Push(float64(i), 0, 0, 0, 4)
	}
	if len(f.Trail) != 4 {
		t.Fatalf("expected trail capped at 4, got %d", len(f.Trail))
	}
	if f.Trail[0].X != 2 || f.Trail[3].X != 5 {
		t.Fatalf("expected oldest samples evicted, trail spans %v..%v", f.Trail[0].X, f.Trail[3].X)
	}
}

func TestFluidAdvanceExpiresSamples(t *testing.T) {
	f := &FluidData{}
	f.Push(1, 1, 0, 0, 8)
	f.Advance(0.5, 0.9)
	f.Push(2, 2, 0, 0, 8)

	f.Advance(0.5, 0.9)
	if len(f.Trail) != 1 {
		t.Fatalf("expected the 1.0s-old sample expired, got %d samples", len(f.Trail))
	}
	if f.Trail[0].X != 2 {
		t.Fatalf("wrong sample survived: %+v", f.Trail[0])
	}
	if f.Trail[0].Age != 0.5 {
		t.Fatalf("expected survivor aged 0.5s, got %v", f.Trail[0].Age)
	}
}

func TestPointerPushTracksPrevious(t *testing.T) {
	p := &PointerData{}
	p.Push(10, 20)
	if p.PrevX != 10 || p.PrevY != 20 {
		t.Fatalf("first sample should seed previous with itself, got (%v, %v)", p.PrevX, p.PrevY)
	}
	p.BeginFrame()
	if p.Moved {
		t.Fatal("BeginFrame should clear Moved")
	}
	p.Push(30, 40)
	if p.PrevX != 10 || p.PrevY != 20 || p.X != 30 || p.Y != 40 || !p.Moved {
		t.Fatalf("unexpected state after second push: %+v", p)
	}
}
