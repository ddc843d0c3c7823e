package chase

import (
	"math"

	"github.com/vovakirdan/reindeer-chase/internal/config"
	"github.com/vovakirdan/reindeer-chase/internal/core"
)

// Viewport is the visible area in world units.
type Viewport struct {
	Width   float64
	Height  float64
	GroundY float64 // Top of the ground band
}

// NewViewport derives the ground line from the configured ground height ratio.
func NewViewport(width, height float64, world config.WorldConfig) Viewport {
	return Viewport{
		Width:   width,
		Height:  height,
		GroundY: height - height*world.GroundHeightRatio,
	}
}

// MountainShaper turns a band into a half-sine hill standing on the ground.
type MountainShaper struct {
	cfg      config.MountainConfig
	viewport Viewport
	rng      core.Random
}

// NewMountainShaper creates a shaper for the given viewport.
func NewMountainShaper(cfg config.MountainConfig, viewport Viewport, rng core.Random) *MountainShaper {
	return &MountainShaper{cfg: cfg, viewport: viewport, rng: rng}
}

// MaxHeight returns the tallest peak the shaper can produce.
func (s *MountainShaper) MaxHeight() float64 {
	return s.viewport.Height * s.cfg.HeightRatio
}

// Reshape draws a new width and peak height and samples the silhouette.
func (s *MountainShaper) Reshape(b *Band) {
	width := core.Uniform(s.rng, s.cfg.MinWidth, s.cfg.MaxWidth)
	maxH := s.MaxHeight()
	height := maxH*s.cfg.MinHeightPercent + s.rng.Float64()*maxH*(1-s.cfg.MinHeightPercent)

	step := s.cfg.SampleStep
	if step <= 0 {
		step = 20
	}
	ground := s.viewport.GroundY

	shape := b.Shape[:0]
	for x := 0.0; x < width; x += step {
		shape = append(shape, core.Point{X: x, Y: ground - height*math.Sin(math.Pi*x/width)})
	}
	// sin(pi) is not exactly zero; pin the far foot to the ground.
	shape = append(shape, core.Point{X: width, Y: ground})

	b.Width = width
	b.Shape = shape
}

// MountainCount returns how many bands keep [-buffer, viewportW + buffer]
// covered. It is the larger of the average-case estimate plus the safety
// margin and the count needed when every band rolls the narrowest width.
func MountainCount(cfg config.MountainConfig, viewportW float64) int {
	total := viewportW + 2*cfg.BufferDistance
	avgWidth := (cfg.MinWidth + cfg.MaxWidth) / 2

	effectiveAvg := math.Max(avgWidth+cfg.PeakSpacing, avgWidth/2)
	count := int(math.Ceil(total/effectiveAvg)) + cfg.SafetyMargin

	minAdvance := cfg.MinWidth + clampSpacing(cfg.PeakSpacing, cfg.MinSpacing, cfg.MinWidth)
	if minAdvance > 0 {
		if worst := int(math.Ceil(total/minAdvance)) + 1; worst > count {
			count = worst
		}
	}
	return count
}

// SilhouetteY returns the silhouette height at worldX, interpolated
// between samples. ok is false when worldX lies outside the band.
func SilhouetteY(b Band, worldX float64) (y float64, ok bool) {
	local := worldX - b.X
	if local < 0 || local > b.Width || len(b.Shape) == 0 {
		return 0, false
	}
	for i := 1; i < len(b.Shape); i++ {
		p0, p1 := b.Shape[i-1], b.Shape[i]
		if local > p1.X {
			continue
		}
		if p1.X == p0.X {
			return math.Min(p0.Y, p1.Y), true
		}
		t := (local - p0.X) / (p1.X - p0.X)
		return p0.Y + t*(p1.Y-p0.Y), true
	}
	return b.Shape[len(b.Shape)-1].Y, true
}

// MountainField is the scrolling chain of mountain bands behind the run.
type MountainField struct {
	cfg      config.MountainConfig
	rng      core.Random
	viewport Viewport
	shaper   *MountainShaper
	feature  *ScrollingFeature

	onRecycle func(id int)
}

// NewMountainField builds a populated field for the viewport.
// onRecycle may be nil.
func NewMountainField(cfg config.MountainConfig, viewport Viewport, rng core.Random, onRecycle func(id int)) *MountainField {
	m := &MountainField{cfg: cfg, rng: rng, onRecycle: onRecycle}
	m.Rebuild(viewport)
	return m
}

// Rebuild tears the field down and lays it out again for a new viewport.
func (m *MountainField) Rebuild(viewport Viewport) {
	m.viewport = viewport
	m.shaper = NewMountainShaper(m.cfg, viewport, m.rng)
	m.feature = NewScrollingFeature(ScrollConfig{
		BaseSpacing:     m.cfg.PeakSpacing,
		SpacingVariance: m.cfg.SpacingVariance,
		MinSpacing:      m.cfg.MinSpacing,
		BufferDistance:  m.cfg.BufferDistance,
	}, m.rng, m.shaper)
	m.feature.OnRecycle = m.onRecycle
	m.feature.Populate(MountainCount(m.cfg, viewport.Width), viewport.Width+m.cfg.BufferDistance)
}

// Scroll advances the field by the configured scroll speed over dt seconds
// and recycles bands that left the screen.
func (m *MountainField) Scroll(dt float64) []int {
	m.feature.Advance(m.cfg.ScrollSpeed * dt)
	return m.feature.RecycleIfNeeded()
}

// Bands returns the live mountain bands.
func (m *MountainField) Bands() []Band {
	return m.feature.Bands()
}

// Viewport returns the viewport the field was built for.
func (m *MountainField) Viewport() Viewport {
	return m.viewport
}

// Covered reports whether the buffered viewport is fully covered.
func (m *MountainField) Covered() bool {
	return m.feature.Covers(-m.cfg.BufferDistance, m.viewport.Width+m.cfg.BufferDistance)
}

// SkylineAt returns the highest silhouette point (smallest y) over worldX.
func (m *MountainField) SkylineAt(worldX float64) (float64, bool) {
	best, found := 0.0, false
	for _, b := range m.feature.Bands() {
		y, ok := SilhouetteY(b, worldX)
		if !ok {
			continue
		}
		if !found || y < best {
			best, found = y, true
		}
	}
	return best, found
}
