package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			Width:  19,
			Height: 17,
		},
		Gameplay: GameplayConfig{
			MaxLevel:   9,
			SeedStride: 1000,
			Hints:      true,
		},
		Display: DisplayConfig{
			Breadcrumbs: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "maze":
		return defaultMazeYAML
	default:
		return nil
	}
}
