package chase

import (
	"math"
	"sort"

	"github.com/vovakirdan/reindeer-chase/internal/core"
)

// Band is one recyclable segment of a horizontally tiled background layer.
type Band struct {
	ID    int
	X     float64      // Left edge in world units
	Width float64      // Fixed until the band is reshaped
	Shape []core.Point // Band-local x in [0, Width], absolute y
}

// Right returns the trailing (right) edge of the band.
func (b Band) Right() float64 {
	return b.X + b.Width
}

// Shaper assigns a fresh width and shape to a band.
type Shaper interface {
	Reshape(b *Band)
}

// ScrollConfig controls how bands are chained together.
type ScrollConfig struct {
	BaseSpacing     float64 // Gap between neighbours; negative overlaps them
	SpacingVariance float64 // Random extra spacing in [0, variance)
	MinSpacing      float64 // Floor for degenerate spacing
	BufferDistance  float64 // Off-screen margin kept covered on both sides
}

// ScrollingFeature keeps a chain of bands scrolling left and recycles each
// band to the right end of the chain once it leaves the left buffer.
type ScrollingFeature struct {
	cfg       ScrollConfig
	rng       core.Random
	shaper    Shaper
	bands     []Band
	rightEdge float64
	nextID    int

	// OnRecycle is called with the band id after each recycle.
	OnRecycle func(id int)
}

// NewScrollingFeature creates an empty feature. Call Populate to place bands.
func NewScrollingFeature(cfg ScrollConfig, rng core.Random, shaper Shaper) *ScrollingFeature {
	return &ScrollingFeature{
		cfg:       cfg,
		rng:       rng,
		shaper:    shaper,
		rightEdge: -cfg.BufferDistance,
	}
}

// Populate discards existing bands and lays out at least count bands from
// the left buffer edge, appending more until the chain reaches coverUntil.
func (f *ScrollingFeature) Populate(count int, coverUntil float64) {
	f.bands = f.bands[:0]
	f.nextID = 0
	f.rightEdge = -f.cfg.BufferDistance

	for len(f.bands) < count || f.rightEdge < coverUntil {
		b := Band{ID: f.nextID}
		f.nextID++
		f.reshape(&b)
		if len(f.bands) == 0 {
			b.X = -f.cfg.BufferDistance
		} else {
			b.X = f.rightEdge + f.spacing(b.Width)
		}
		f.rightEdge = b.Right()
		f.bands = append(f.bands, b)
	}
}

// Advance shifts every band left by d.
func (f *ScrollingFeature) Advance(d float64) {
	if d == 0 {
		return
	}
	for i := range f.bands {
		f.bands[i].X -= d
	}
	f.rightEdge -= d
}

// RecycleIfNeeded moves every band whose trailing edge has passed the left
// buffer to the right end of the chain with a new shape. It returns the ids
// of the recycled bands in recycle order.
func (f *ScrollingFeature) RecycleIfNeeded() []int {
	var recycled []int
	limit := -f.cfg.BufferDistance

	for i := range f.bands {
		b := &f.bands[i]
		if b.Right() >= limit {
			continue
		}
		f.reshape(b)
		b.X = f.rightEdge + f.spacing(b.Width)
		f.rightEdge = b.Right()

		recycled = append(recycled, b.ID)
		if f.OnRecycle != nil {
			f.OnRecycle(b.ID)
		}
	}
	return recycled
}

// reshape delegates to the shaper and keeps the width positive so the
// right-edge tracker always advances.
func (f *ScrollingFeature) reshape(b *Band) {
	f.shaper.Reshape(b)
	if b.Width <= 0 {
		b.Width = 1
	}
}

// spacing draws the gap placed before a band of the given width.
func (f *ScrollingFeature) spacing(width float64) float64 {
	s := f.cfg.BaseSpacing
	if f.cfg.SpacingVariance > 0 {
		s += f.rng.Float64() * f.cfg.SpacingVariance
	}
	return clampSpacing(s, f.cfg.MinSpacing, width)
}

// clampSpacing limits s to [max(minSpacing, -width/2), 0]. The lower bound
// stops a band from being placed entirely behind the tracked edge; the upper
// bound keeps neighbours touching.
func clampSpacing(s, minSpacing, width float64) float64 {
	floor := math.Max(minSpacing, -width/2)
	return core.ClampF(s, floor, 0)
}

// Bands returns the live bands. The slice is owned by the feature.
func (f *ScrollingFeature) Bands() []Band {
	return f.bands
}

// RightEdge returns the tracked right-most edge of the chain.
func (f *ScrollingFeature) RightEdge() float64 {
	return f.rightEdge
}

// coverEpsilon absorbs rounding drift between band edges and the tracker.
const coverEpsilon = 1e-6

// Covers reports whether the union of band intervals covers [lo, hi]
// without a gap.
func (f *ScrollingFeature) Covers(lo, hi float64) bool {
	if len(f.bands) == 0 {
		return false
	}
	spans := make([][2]float64, len(f.bands))
	for i, b := range f.bands {
		spans[i] = [2]float64{b.X, b.Right()}
	}
	sort.Slice(spans, func(i, j int) bool {
		return spans[i][0] < spans[j][0]
	})

	reach := lo
	for _, s := range spans {
		if s[0] > reach+coverEpsilon {
			return false
		}
		if s[1] > reach {
			reach = s[1]
		}
		if reach >= hi-coverEpsilon {
			return true
		}
	}
	return false
}
