package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the built-in crossing configuration.
// It mirrors defaults/crossing.yaml and is used if the embedded file cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Gameplay: GameplayConfig{
			Lives:  3,
			StartX: 200,
			StartY: 400,
		},
		Enemies: []EnemySpawn{
			{X: 0, Y: 50, Speed: 100},
			{X: 0, Y: 150, Speed: 150},
			{X: 0, Y: 240, Speed: 100},
		},
		Token: TokenSpawn{X: 200, Y: 20},
		Progression: ProgressionConfig{
			Enabled:        true,
			MilestoneEvery: 5,
			MaxSpawnSpeed:  100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
