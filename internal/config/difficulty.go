package config

import (
	"math"
	"time"
)

// randomSource is satisfied by *rand.Rand and core.Random.
type randomSource interface {
	Float64() float64
}

// DifficultyModel maps the current score to obstacle speed and draws spawn
// delays. It holds no mutable state.
type DifficultyModel struct {
	cfg DifficultyConfig
}

// NewDifficultyModel creates a new difficulty model.
func NewDifficultyModel(cfg DifficultyConfig) *DifficultyModel {
	return &DifficultyModel{cfg: cfg}
}

// IsEnabled returns whether speed progression is active.
func (d *DifficultyModel) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.SpeedPerPoint > 0
}

// Speed returns the obstacle speed for a score:
// min(start + score*perPoint, max). Negative scores count as zero.
func (d *DifficultyModel) Speed(score int) float64 {
	if !d.IsEnabled() || score <= 0 {
		return math.Min(d.cfg.StartSpeed, d.cfg.MaxSpeed)
	}
	speed := d.cfg.StartSpeed + float64(score)*d.cfg.SpeedPerPoint
	return math.Min(speed, d.cfg.MaxSpeed)
}

// SaturatedAt returns the first score at which Speed reaches MaxSpeed,
// or -1 if progression is disabled.
func (d *DifficultyModel) SaturatedAt() int {
	if !d.IsEnabled() {
		return -1
	}
	if d.cfg.StartSpeed >= d.cfg.MaxSpeed {
		return 0
	}
	return int(math.Ceil((d.cfg.MaxSpeed - d.cfg.StartSpeed) / d.cfg.SpeedPerPoint))
}

// SpawnDelay draws the delay before the next obstacle, uniform in
// [SpawnDelayMin, SpawnDelayMax). It does not depend on score.
func (d *DifficultyModel) SpawnDelay(r randomSource) time.Duration {
	lo := float64(d.cfg.SpawnDelayMin)
	hi := float64(d.cfg.SpawnDelayMax)
	ms := lo
	if hi > lo {
		ms = lo + r.Float64()*(hi-lo)
	}
	return time.Duration(ms * float64(time.Millisecond))
}
