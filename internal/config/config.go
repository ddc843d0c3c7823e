// Package config provides YAML-based game configuration loading and
// difficulty modelling for the runner.
package config

// ChaseConfig contains all configuration for Reindeer Chase.
// Distances are world units (pixels in the web host), speeds are units per
// second and delays are milliseconds.
type ChaseConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Mountains  MountainConfig   `yaml:"mountains"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Terminal   TerminalConfig   `yaml:"terminal"`
}

// WorldConfig defines screen-relative layout.
type WorldConfig struct {
	GroundHeightRatio float64 `yaml:"ground_height_ratio"`
	EndDelayMs        int     `yaml:"end_delay_ms"` // Pause between collision and results screen
}

// PlayerConfig defines the runner's physics and hitbox.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Size         float64 `yaml:"size"`
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = up
}

// ObstacleConfig defines the obstacle pool.
type ObstacleConfig struct {
	PoolCapacity int     `yaml:"pool_capacity"`
	Width        float64 `yaml:"width"`
	MinHeight    float64 `yaml:"min_height"`
	MaxHeight    float64 `yaml:"max_height"`
	SpawnOffset  float64 `yaml:"spawn_offset"` // Distance past the right edge where obstacles appear
	RecycleX     float64 `yaml:"recycle_x"`    // Obstacles left of this x are recycled and scored
}

// MountainConfig defines the scrolling mountain silhouettes.
type MountainConfig struct {
	PeakSpacing      float64 `yaml:"peak_spacing"` // Negative overlaps neighbouring peaks
	SpacingVariance  float64 `yaml:"spacing_variance"`
	MinSpacing       float64 `yaml:"min_spacing"` // Floor applied to degenerate spacing
	MinWidth         float64 `yaml:"min_width"`
	MaxWidth         float64 `yaml:"max_width"`
	HeightRatio      float64 `yaml:"height_ratio"`
	MinHeightPercent float64 `yaml:"min_height_percent"`
	ScrollSpeed      float64 `yaml:"scroll_speed"`
	BufferDistance   float64 `yaml:"buffer_distance"`
	SampleStep       float64 `yaml:"sample_step"`
	SafetyMargin     int     `yaml:"safety_margin"`
}

// DifficultyConfig defines obstacle speed progression and spawn pacing.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	StartSpeed    float64 `yaml:"start_speed"`
	SpeedPerPoint float64 `yaml:"speed_per_point"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpawnDelayMin int     `yaml:"spawn_delay_min_ms"`
	SpawnDelayMax int     `yaml:"spawn_delay_max_ms"`
}

// TerminalConfig maps terminal cells to world units.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
