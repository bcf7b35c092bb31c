package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: BoardConfig{
			Columns: 10,
			Rows: []string{
				RowWater,
				RowRoad, RowRoad,
				RowGrass,
				RowRoad, RowRoad,
				RowGrass,
			},
		},
		Enemies: EnemiesConfig{
			Count:    4,
			MinSpeed: 3.0,
			MaxSpeed: 8.0,
		},
		Diamonds: DiamondsConfig{
			Count: 3,
		},
		Scoring: ScoringConfig{
			Diamond: 1,
			Water:   2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for the game.
func GetDefaultYAML() []byte {
	return defaultCrossingYAML
}
