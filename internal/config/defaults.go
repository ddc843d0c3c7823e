package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default Reindeer Chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		World: WorldConfig{
			GroundHeightRatio: 0.15,
			EndDelayMs:        100,
		},
		Player: PlayerConfig{
			X:            100,
			Size:         30,
			Gravity:      1000,
			JumpVelocity: -600,
		},
		Obstacles: ObstacleConfig{
			PoolCapacity: 10,
			Width:        20,
			MinHeight:    40,
			MaxHeight:    90,
			SpawnOffset:  50,
			RecycleX:     -50,
		},
		Mountains: MountainConfig{
			PeakSpacing:      -150,
			SpacingVariance:  100,
			MinSpacing:       -300,
			MinWidth:         400,
			MaxWidth:         800,
			HeightRatio:      0.6,
			MinHeightPercent: 0.4,
			ScrollSpeed:      30, // 0.5 units per frame at 60fps
			BufferDistance:   800,
			SampleStep:       20,
			SafetyMargin:     3,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			StartSpeed:    150,
			SpeedPerPoint: 15,
			MaxSpeed:      500,
			SpawnDelayMin: 1500,
			SpawnDelayMax: 2200,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chase":
		return defaultChaseYAML
	default:
		return nil
	}
}
