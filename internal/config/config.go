// Package config provides YAML-based game configuration loading and
// difficulty presets for the maze terminal.
package config

import "fmt"

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
}

// GridConfig defines the maze dimensions. Both must be odd and at least 5
// so the carver has room for a border wall and a cell lattice.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines level progression parameters.
type GameplayConfig struct {
	MaxLevel   int  `yaml:"max_level"`   // Levels per campaign before wrapping back to 1
	SeedStride int  `yaml:"seed_stride"` // Seed offset between consecutive levels
	Hints      bool `yaml:"hints"`       // Allow the solution overlay toggle
}

// DisplayConfig defines rendering preferences.
type DisplayConfig struct {
	Breadcrumbs bool `yaml:"breadcrumbs"` // Mark visited cells on screen
}

// Validate reports the first problem with the configuration, or nil.
func (c MazeConfig) Validate() error {
	if c.Grid.Width < 5 || c.Grid.Width%2 == 0 {
		return fmt.Errorf("grid width must be odd and at least 5, got %d", c.Grid.Width)
	}
	if c.Grid.Height < 5 || c.Grid.Height%2 == 0 {
		return fmt.Errorf("grid height must be odd and at least 5, got %d", c.Grid.Height)
	}
	if c.Gameplay.MaxLevel < 1 {
		return fmt.Errorf("max_level must be at least 1, got %d", c.Gameplay.MaxLevel)
	}
	if c.Gameplay.SeedStride < 1 {
		return fmt.Errorf("seed_stride must be at least 1, got %d", c.Gameplay.SeedStride)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetDims returns the maze dimensions for a difficulty preset.
// Unknown presets get the normal dimensions.
func PresetDims(preset DifficultyPreset) (width, height int) {
	switch preset {
	case DifficultyEasy:
		return 15, 13
	case DifficultyHard:
		return 25, 21
	default:
		return 19, 17
	}
}
