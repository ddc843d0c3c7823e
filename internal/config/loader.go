package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChase loads Reindeer Chase configuration.
// Search order: customPath -> ~/.reindeer/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
//
// Files found on the implicit search path that fail to parse or validate are
// skipped; a bad customPath is reported as an error.
func LoadChase(customPath string) (ChaseConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChaseConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseChase(data)
		if err != nil {
			return ChaseConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("chase.yaml"), filepath.Join("configs", "chase.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseChase(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseChase(defaultChaseYAML)
	if err != nil {
		return DefaultChaseConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parseChase decodes YAML over the hardcoded defaults, so partial files only
// override the keys they mention, then validates the result.
func parseChase(data []byte) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChaseConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ChaseConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reindeer", "configs", filename)
}

// Validate reports every setting that would break the simulation.
func (c ChaseConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.GroundHeightRatio > 0 && c.World.GroundHeightRatio < 1,
		"world.ground_height_ratio must be in (0, 1), got %v", c.World.GroundHeightRatio)
	check(c.World.EndDelayMs >= 0, "world.end_delay_ms must not be negative")

	check(c.Player.Size > 0, "player.size must be positive")
	check(c.Player.Gravity > 0, "player.gravity must be positive")
	check(c.Player.JumpVelocity < 0, "player.jump_velocity must be negative (up)")

	o := c.Obstacles
	check(o.PoolCapacity > 0, "obstacles.pool_capacity must be positive, got %d", o.PoolCapacity)
	check(o.Width > 0, "obstacles.width must be positive")
	check(o.MinHeight > 0 && o.MinHeight <= o.MaxHeight,
		"obstacles heights must satisfy 0 < min_height <= max_height, got %v..%v", o.MinHeight, o.MaxHeight)

	m := c.Mountains
	check(m.MinWidth > 0 && m.MinWidth <= m.MaxWidth,
		"mountains widths must satisfy 0 < min_width <= max_width, got %v..%v", m.MinWidth, m.MaxWidth)
	check(m.SpacingVariance >= 0, "mountains.spacing_variance must not be negative")
	check(m.PeakSpacing+m.SpacingVariance <= 0,
		"mountains.peak_spacing + spacing_variance must be <= 0 to keep peaks touching, got %v",
		m.PeakSpacing+m.SpacingVariance)
	check(m.HeightRatio > 0, "mountains.height_ratio must be positive")
	check(m.MinHeightPercent >= 0 && m.MinHeightPercent <= 1, "mountains.min_height_percent must be in [0, 1]")
	check(m.ScrollSpeed >= 0, "mountains.scroll_speed must not be negative")
	check(m.BufferDistance >= 0, "mountains.buffer_distance must not be negative")
	check(m.SampleStep > 0, "mountains.sample_step must be positive")
	check(m.SafetyMargin >= 0, "mountains.safety_margin must not be negative")

	d := c.Difficulty
	check(d.StartSpeed > 0, "difficulty.start_speed must be positive")
	check(d.MaxSpeed >= d.StartSpeed, "difficulty.max_speed must be >= start_speed")
	check(d.SpeedPerPoint >= 0, "difficulty.speed_per_point must not be negative")
	check(d.SpawnDelayMin > 0 && d.SpawnDelayMin <= d.SpawnDelayMax,
		"difficulty spawn delays must satisfy 0 < min <= max, got %d..%d", d.SpawnDelayMin, d.SpawnDelayMax)

	check(c.Terminal.CellWidth > 0 && c.Terminal.CellHeight > 0, "terminal cell size must be positive")

	return errors.Join(errs...)
}

// ApplyChasePreset modifies the config based on a difficulty preset.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty
	switch preset {
	case DifficultyFixed:
		d.Enabled = false
		return
	case DifficultyEasy:
		d.StartSpeed *= 0.8
		d.SpeedPerPoint *= 0.6
	case DifficultyHard:
		d.StartSpeed *= 1.5
		d.SpeedPerPoint *= 1.5
		d.SpawnDelayMin = d.SpawnDelayMin * 4 / 5
		d.SpawnDelayMax = d.SpawnDelayMax * 4 / 5
	case DifficultyNormal:
	default:
		return
	}
	d.Enabled = true
	if d.StartSpeed > d.MaxSpeed {
		d.StartSpeed = d.MaxSpeed
	}
}
