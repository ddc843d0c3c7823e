package chase

import (
	"math"
	"testing"

	"github.com/vovakirdan/reindeer-chase/internal/config"
	"github.com/vovakirdan/reindeer-chase/internal/core"
)

func testViewport(w, h float64) Viewport {
	return NewViewport(w, h, config.DefaultChaseConfig().World)
}

func TestNewViewport(t *testing.T) {
	vp := testViewport(800, 600)
	if vp.GroundY != 510 {
		t.Errorf("GroundY = %v, expected 510", vp.GroundY)
	}
}

func TestMountainShape(t *testing.T) {
	cfg := config.DefaultChaseConfig().Mountains
	vp := testViewport(800, 600)
	shaper := NewMountainShaper(cfg, vp, core.NewRandom(9))
	maxH := shaper.MaxHeight()

	for i := 0; i < 200; i++ {
		var b Band
		shaper.Reshape(&b)

		if b.Width < cfg.MinWidth || b.Width >= cfg.MaxWidth {
			t.Fatalf("width %v outside [%v, %v)", b.Width, cfg.MinWidth, cfg.MaxWidth)
		}

		first, last := b.Shape[0], b.Shape[len(b.Shape)-1]
		if first.X != 0 || first.Y != vp.GroundY {
			t.Fatalf("shape should start on the ground at x=0, got %+v", first)
		}
		if last.X != b.Width || last.Y != vp.GroundY {
			t.Fatalf("shape should end on the ground at x=width, got %+v", last)
		}

		peak := vp.GroundY
		for j, p := range b.Shape {
			if j > 0 && p.X <= b.Shape[j-1].X {
				t.Fatalf("shape x must increase, got %v after %v", p.X, b.Shape[j-1].X)
			}
			if p.Y > vp.GroundY {
				t.Fatalf("point %+v below ground %v", p, vp.GroundY)
			}
			peak = math.Min(peak, p.Y)
		}
		height := vp.GroundY - peak
		if height > maxH+1e-9 {
			t.Fatalf("peak height %v exceeds %v", height, maxH)
		}
		// Sampling every 20 units can miss the apex by at most 1 - cos(pi*10/width).
		if minH := maxH * cfg.MinHeightPercent * 0.99; height < minH {
			t.Fatalf("peak height %v below %v", height, minH)
		}
	}
}

func TestMountainReshapeReusesBand(t *testing.T) {
	cfg := config.DefaultChaseConfig().Mountains
	shaper := NewMountainShaper(cfg, testViewport(800, 600), core.NewRandom(2))

	b := Band{ID: 4, X: 123}
	shaper.Reshape(&b)
	shaper.Reshape(&b)

	if b.ID != 4 || b.X != 123 {
		t.Errorf("Reshape must not touch id or position, got id=%d x=%v", b.ID, b.X)
	}
	if b.Shape[len(b.Shape)-1].X != b.Width {
		t.Errorf("stale samples left in shape: last x %v, width %v", b.Shape[len(b.Shape)-1].X, b.Width)
	}
}

func TestMountainCount(t *testing.T) {
	cfg := config.DefaultChaseConfig().Mountains

	tests := []struct {
		viewportW float64
		expected  int
	}{
		{800, 11},  // average estimate 9, worst case ceil(2400/250)+1
		{1920, 16}, // average estimate 11, worst case ceil(3520/250)+1
	}

	for _, tc := range tests {
		if got := MountainCount(cfg, tc.viewportW); got != tc.expected {
			t.Errorf("MountainCount(%v) = %d, expected %d", tc.viewportW, got, tc.expected)
		}
	}

	// With no width jitter and no overlap the average estimate dominates.
	flat := cfg
	flat.MinWidth, flat.MaxWidth = 500, 500
	flat.PeakSpacing, flat.SpacingVariance = 0, 0
	if got := MountainCount(flat, 800); got != 5+flat.SafetyMargin {
		t.Errorf("MountainCount(flat) = %d, expected %d", got, 5+flat.SafetyMargin)
	}
}

func TestSilhouetteY(t *testing.T) {
	b := Band{
		X:     100,
		Width: 40,
		Shape: []core.Point{{X: 0, Y: 100}, {X: 20, Y: 50}, {X: 40, Y: 100}},
	}

	tests := []struct {
		worldX   float64
		expected float64
		ok       bool
	}{
		{99, 0, false},
		{100, 100, true},
		{110, 75, true},
		{120, 50, true},
		{130, 75, true},
		{140, 100, true},
		{141, 0, false},
	}

	for _, tc := range tests {
		y, ok := SilhouetteY(b, tc.worldX)
		if ok != tc.ok || y != tc.expected {
			t.Errorf("SilhouetteY(%v) = (%v, %v), expected (%v, %v)", tc.worldX, y, ok, tc.expected, tc.ok)
		}
	}
}

func TestMountainFieldNoGap(t *testing.T) {
	cfg := config.DefaultChaseConfig().Mountains
	cfg.ScrollSpeed = 900 // Many recycles per test

	for seed := int64(1); seed <= 25; seed++ {
		field := NewMountainField(cfg, testViewport(800, 600), core.NewRandom(seed), nil)
		if !field.Covered() {
			t.Fatalf("seed %d: initial field has a gap", seed)
		}

		recycles := 0
		for tick := 0; tick < 2000; tick++ {
			recycles += len(field.Scroll(1.0 / 60))
			if !field.Covered() {
				t.Fatalf("seed %d: gap after tick %d", seed, tick)
			}
		}
		if recycles == 0 {
			t.Fatalf("seed %d: expected recycles", seed)
		}
	}
}

func TestMountainFieldNoGapWideJitter(t *testing.T) {
	cfg := config.DefaultChaseConfig().Mountains
	cfg.ScrollSpeed = 1200
	cfg.MinWidth, cfg.MaxWidth = 60, 900
	cfg.PeakSpacing, cfg.SpacingVariance = -400, 350
	cfg.SafetyMargin = 0

	for seed := int64(1); seed <= 25; seed++ {
		field := NewMountainField(cfg, testViewport(1280, 720), core.NewRandom(seed), nil)
		for tick := 0; tick < 2000; tick++ {
			field.Scroll(1.0 / 60)
			if !field.Covered() {
				t.Fatalf("seed %d: gap after tick %d", seed, tick)
			}
		}
	}
}

func TestMountainFieldRebuild(t *testing.T) {
	cfg := config.DefaultChaseConfig().Mountains
	field := NewMountainField(cfg, testViewport(800, 600), core.NewRandom(4), nil)
	for i := 0; i < 100; i++ {
		field.Scroll(1.0 / 60)
	}

	wide := testViewport(1920, 1080)
	field.Rebuild(wide)

	if field.Viewport() != wide {
		t.Errorf("Viewport() = %+v, expected %+v", field.Viewport(), wide)
	}
	if n := len(field.Bands()); n < MountainCount(cfg, wide.Width) {
		t.Errorf("rebuilt field has %d bands, expected at least %d", n, MountainCount(cfg, wide.Width))
	}
	if !field.Covered() {
		t.Error("rebuilt field should cover the new viewport")
	}
	for _, b := range field.Bands() {
		if b.Shape[0].Y != wide.GroundY {
			t.Fatalf("band %d still stands on the old ground %v", b.ID, b.Shape[0].Y)
		}
	}
}

func TestMountainFieldRecycleHook(t *testing.T) {
	cfg := config.DefaultChaseConfig().Mountains
	cfg.ScrollSpeed = 600

	var hooked int
	field := NewMountainField(cfg, testViewport(800, 600), core.NewRandom(5), func(int) {
		hooked++
	})

	returned := 0
	for i := 0; i < 600; i++ {
		returned += len(field.Scroll(1.0 / 60))
	}
	if returned == 0 || hooked != returned {
		t.Errorf("hook saw %d recycles, Scroll returned %d", hooked, returned)
	}
}

func TestSkylineAt(t *testing.T) {
	cfg := config.DefaultChaseConfig().Mountains
	vp := testViewport(800, 600)
	field := NewMountainField(cfg, vp, core.NewRandom(6), nil)

	for x := 0.0; x <= vp.Width; x += 10 {
		y, ok := field.SkylineAt(x)
		if !ok {
			t.Fatalf("SkylineAt(%v) found no band", x)
		}
		if y > vp.GroundY {
			t.Fatalf("SkylineAt(%v) = %v, below ground", x, y)
		}
	}
}
