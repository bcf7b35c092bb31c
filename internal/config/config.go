// Package config provides YAML-based game configuration loading and
// difficulty presets for the crossing game.
package config

import (
	"errors"
	"fmt"
)

// Configuration validation errors.
var (
	ErrUnknownRowType   = errors.New("config: unknown row type")
	ErrTooManyDiamonds  = errors.New("config: diamond count exceeds available road cells")
	ErrNoRoadRows       = errors.New("config: enemies and diamonds require at least one road row")
	ErrInvalidSpeedBand = errors.New("config: min_speed must be positive and not exceed max_speed")
)

// Known board row types.
const (
	RowWater = "water"
	RowRoad  = "road"
	RowGrass = "grass"
)

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Enemies  EnemiesConfig  `yaml:"enemies"`
	Diamonds DiamondsConfig `yaml:"diamonds"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// BoardConfig defines the grid shape. Rows are listed top to bottom;
// the player always starts on the bottom row.
type BoardConfig struct {
	Columns int      `yaml:"columns"`
	Rows    []string `yaml:"rows"`
}

// EnemiesConfig defines enemy spawning parameters. Speeds are in board
// cells per second; each enemy samples a magnitude uniformly from
// [MinSpeed, MaxSpeed] with the sign of its travel direction.
type EnemiesConfig struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// DiamondsConfig defines collectible placement.
type DiamondsConfig struct {
	Count int `yaml:"count"`
}

// ScoringConfig defines score increments for collisions.
type ScoringConfig struct {
	Diamond int `yaml:"diamond"` // Collecting a diamond
	Water   int `yaml:"water"`   // Reaching a water (goal) row
}

// Validate checks the configuration for internal consistency.
// A config that fails validation aborts startup; there is no recovery.
func (c *CrossingConfig) Validate() error {
	if c.Board.Columns < 1 {
		return fmt.Errorf("config: board needs at least 1 column, got %d", c.Board.Columns)
	}
	if len(c.Board.Rows) < 2 {
		return fmt.Errorf("config: board needs at least 2 rows, got %d", len(c.Board.Rows))
	}

	roadRows := 0
	for _, rt := range c.Board.Rows {
		switch rt {
		case RowWater, RowGrass:
		case RowRoad:
			roadRows++
		default:
			return fmt.Errorf("%w: %q", ErrUnknownRowType, rt)
		}
	}

	if c.Enemies.Count < 0 {
		return fmt.Errorf("config: enemy count must be non-negative, got %d", c.Enemies.Count)
	}
	if c.Diamonds.Count < 0 {
		return fmt.Errorf("config: diamond count must be non-negative, got %d", c.Diamonds.Count)
	}
	if (c.Enemies.Count > 0 || c.Diamonds.Count > 0) && roadRows == 0 {
		return ErrNoRoadRows
	}
	if c.Diamonds.Count > roadRows*c.Board.Columns {
		return fmt.Errorf("%w: %d diamonds, %d road cells",
			ErrTooManyDiamonds, c.Diamonds.Count, roadRows*c.Board.Columns)
	}
	if c.Enemies.Count > 0 {
		if c.Enemies.MinSpeed <= 0 || c.Enemies.MinSpeed > c.Enemies.MaxSpeed {
			return fmt.Errorf("%w: [%v, %v]",
				ErrInvalidSpeedBand, c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
// Presets are static: they change construction-time parameters only,
// there is no in-game progression.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// An empty or unknown preset leaves the config unchanged.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = 3
		cfg.Enemies.MinSpeed = 2.0
		cfg.Enemies.MaxSpeed = 5.0
	case DifficultyNormal:
		cfg.Enemies.Count = 4
		cfg.Enemies.MinSpeed = 3.0
		cfg.Enemies.MaxSpeed = 8.0
	case DifficultyHard:
		cfg.Enemies.Count = 6
		cfg.Enemies.MinSpeed = 5.0
		cfg.Enemies.MaxSpeed = 12.0
	}
}
