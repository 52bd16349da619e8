package carousel

import (
	"math"
	"testing"
)

func newTrack() *Track {
	return &Track{Offset: 1000, ContentWidth: 5000, ViewportWidth: 1200}
}

func TestDragMovesTrack(t *testing.T) {
	c := New(newTrack())
	c.StartDrag(500)
	c.Drag(450)
	if c.Track.Offset != 1050 {
		t.Fatalf("offset = %f, want 1050", c.Track.Offset)
	}
	c.Drag(470)
	if c.Track.Offset != 1030 {
		t.Fatalf("offset = %f, want 1030", c.Track.Offset)
	}
	if c.Velocity() != 20 {
		t.Fatalf("velocity = %f, want 20", c.Velocity())
	}
}

func TestDragScaledOnMobile(t *testing.T) {
	tr := newTrack()
	tr.ViewportWidth = 375
	c := New(tr)
	c.StartDrag(200)
	c.Drag(100)
	if tr.Offset != 1150 {
		t.Fatalf("offset = %f, want 1150", tr.Offset)
	}
}

func TestDragIgnoredWhenNotDragging(t *testing.T) {
	c := New(newTrack())
	c.Drag(0)
	c.EndDrag()
	if c.Track.Offset != 1000 || c.Coasting() {
		t.Fatalf("offset=%f coasting=%v", c.Track.Offset, c.Coasting())
	}
}

func TestMomentumDecay(t *testing.T) {
	c := New(newTrack())
	c.StartDrag(600)
	c.Drag(590)
	c.Drag(570) // v0 = -20
	c.EndDrag()

	v0 := c.Velocity()
	for n := 1; n <= 10; n++ {
		if !c.Tick() {
			t.Fatalf("momentum stopped early at step %d", n)
		}
		want := v0 * math.Pow(Friction, float64(n))
		if math.Abs(c.Velocity()-want) > 1e-9 {
			t.Fatalf("step %d: v=%f, want %f", n, c.Velocity(), want)
		}
	}
	for i := 0; i < 1000 && c.Tick(); i++ {
	}
	if c.Coasting() || c.Velocity() != 0 {
		t.Fatalf("momentum did not stop: v=%f", c.Velocity())
	}
}

func TestMomentumStopsAtThreshold(t *testing.T) {
	c := New(newTrack())
	c.StartDrag(100)
	c.Drag(100.52)
	c.EndDrag()
	// 0.52 × 0.95 = 0.494 ≤ 0.5
	if c.Tick() {
		t.Fatal("expected momentum to stop after one tick")
	}
	if c.Velocity() != 0 {
		t.Fatalf("velocity = %f, want 0", c.Velocity())
	}
}

func TestOffsetClamped(t *testing.T) {
	tr := newTrack()
	c := New(tr)
	c.Wheel(-5000)
	if tr.Offset != 0 {
		t.Fatalf("offset = %f, want 0", tr.Offset)
	}
	c.Wheel(1e6)
	if tr.Offset != tr.MaxOffset() {
		t.Fatalf("offset = %f, want %f", tr.Offset, tr.MaxOffset())
	}
}

func TestWheelAddsDelta(t *testing.T) {
	tr := newTrack()
	New(tr).Wheel(120)
	if tr.Offset != 1120 {
		t.Fatalf("offset = %f, want 1120", tr.Offset)
	}
}

func TestArrowEasesToTarget(t *testing.T) {
	tr := newTrack()
	c := New(tr)
	c.Arrow(1, false)
	if c.Tick() {
		t.Fatal("arrow while off screen should not scroll")
	}

	c.Arrow(1, true)
	for i := 0; i < 200 && c.Tick(); i++ {
	}
	if tr.Offset != 1320 {
		t.Fatalf("offset = %f, want 1320", tr.Offset)
	}

	c.Arrow(-1, true)
	c.Arrow(-1, true)
	for i := 0; i < 200 && c.Tick(); i++ {
	}
	if tr.Offset != 680 {
		t.Fatalf("offset = %f, want 680", tr.Offset)
	}
}

func TestStartDragCancelsMomentum(t *testing.T) {
	c := New(newTrack())
	c.StartDrag(0)
	c.Drag(-30)
	c.EndDrag()
	c.Tick()
	c.StartDrag(10)
	if c.Coasting() {
		t.Fatal("momentum still running after a new drag began")
	}
}
