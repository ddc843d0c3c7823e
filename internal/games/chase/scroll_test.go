package chase

import (
	"testing"

	"github.com/vovakirdan/reindeer-chase/internal/core"
)

// fixedShaper gives every band the same width and a flat shape.
type fixedShaper struct {
	width float64
	calls int
}

func (s *fixedShaper) Reshape(b *Band) {
	s.calls++
	b.Width = s.width
	b.Shape = []core.Point{{X: 0, Y: 0}, {X: s.width, Y: 0}}
}

func TestRecycleThreshold(t *testing.T) {
	shaper := &fixedShaper{width: 500}
	f := NewScrollingFeature(ScrollConfig{BufferDistance: 800}, core.NewRandom(1), shaper)
	f.bands = []Band{
		{ID: 0, X: -820, Width: 500}, // trailing edge -320: still inside the buffer
		{ID: 1, X: -850, Width: 40},  // trailing edge -810: past -800
	}
	f.rightEdge = -320

	recycled := f.RecycleIfNeeded()

	if len(recycled) != 1 || recycled[0] != 1 {
		t.Fatalf("RecycleIfNeeded() = %v, expected [1]", recycled)
	}
	if f.bands[0].X != -820 {
		t.Errorf("band 0 should not move, X = %v", f.bands[0].X)
	}
	if f.bands[1].X != -320 {
		t.Errorf("band 1 should be placed at the tracked edge, X = %v", f.bands[1].X)
	}
	if f.bands[1].Width != 500 {
		t.Errorf("band 1 should be reshaped, width = %v", f.bands[1].Width)
	}
	if f.RightEdge() != 180 {
		t.Errorf("RightEdge() = %v, expected 180", f.RightEdge())
	}
	if shaper.calls != 1 {
		t.Errorf("shaper called %d times, expected 1", shaper.calls)
	}
}

func TestRecycleHook(t *testing.T) {
	f := NewScrollingFeature(ScrollConfig{BaseSpacing: -10, MinSpacing: -50, BufferDistance: 100}, core.NewRandom(1), &fixedShaper{width: 50})
	var hooked []int
	f.OnRecycle = func(id int) {
		hooked = append(hooked, id)
	}
	f.Populate(0, 400)

	var returned []int
	for i := 0; i < 100; i++ {
		f.Advance(7)
		returned = append(returned, f.RecycleIfNeeded()...)
	}

	if len(returned) == 0 {
		t.Fatal("expected bands to be recycled")
	}
	if len(hooked) != len(returned) {
		t.Fatalf("hook saw %d recycles, RecycleIfNeeded returned %d", len(hooked), len(returned))
	}
	for i := range hooked {
		if hooked[i] != returned[i] {
			t.Errorf("recycle %d: hook id %d, returned id %d", i, hooked[i], returned[i])
		}
	}
}

func TestClampSpacing(t *testing.T) {
	tests := []struct {
		name        string
		s, floor, w float64
		expected    float64
	}{
		{"positive gap closed", 50, -300, 400, 0},
		{"in range", -100, -300, 400, -100},
		{"half width floor", -500, -300, 400, -200},
		{"configured floor", -400, -300, 800, -300},
		{"between floors", -250, -300, 800, -250},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampSpacing(tc.s, tc.floor, tc.w); got != tc.expected {
				t.Errorf("clampSpacing(%v, %v, %v) = %v, expected %v", tc.s, tc.floor, tc.w, got, tc.expected)
			}
		})
	}
}

func TestPopulateReachesCoverTarget(t *testing.T) {
	f := NewScrollingFeature(ScrollConfig{BaseSpacing: -20, MinSpacing: -50, BufferDistance: 100}, core.NewRandom(3), &fixedShaper{width: 100})
	f.Populate(1, 1000)

	if f.RightEdge() < 1000 {
		t.Errorf("RightEdge() = %v, expected >= 1000", f.RightEdge())
	}
	if len(f.Bands()) < 2 {
		t.Errorf("expected extra bands beyond the requested count, got %d", len(f.Bands()))
	}
	if f.Bands()[0].X != -100 {
		t.Errorf("first band should start at the left buffer, X = %v", f.Bands()[0].X)
	}
	if !f.Covers(-100, 1000) {
		t.Error("populated chain should cover [-100, 1000]")
	}
}

func TestPopulateIsRepeatable(t *testing.T) {
	f := NewScrollingFeature(ScrollConfig{BaseSpacing: -20, MinSpacing: -50, BufferDistance: 100}, core.NewRandom(3), &fixedShaper{width: 100})
	f.Populate(5, 0)
	f.Populate(5, 0)

	if len(f.Bands()) != 5 {
		t.Errorf("Populate should replace bands, got %d", len(f.Bands()))
	}
	if f.Bands()[0].ID != 0 {
		t.Errorf("ids should restart at 0, got %d", f.Bands()[0].ID)
	}
}

func TestCovers(t *testing.T) {
	f := &ScrollingFeature{}
	if f.Covers(0, 10) {
		t.Error("empty feature covers nothing")
	}

	f.bands = []Band{
		{X: 50, Width: 60},
		{X: -10, Width: 70},
	}
	if !f.Covers(0, 100) {
		t.Error("overlapping bands should cover [0, 100]")
	}
	if f.Covers(0, 120) {
		t.Error("chain ends at 110")
	}

	f.bands = append(f.bands, Band{X: 115, Width: 50})
	if f.Covers(0, 150) {
		t.Error("gap between 110 and 115 should be detected")
	}
}

func TestZeroWidthShapeStillAdvances(t *testing.T) {
	f := NewScrollingFeature(ScrollConfig{BufferDistance: 10}, core.NewRandom(1), &fixedShaper{width: 0})
	f.Populate(3, 0)

	for _, b := range f.Bands() {
		if b.Width <= 0 {
			t.Fatalf("band %d has width %v", b.ID, b.Width)
		}
	}
}
