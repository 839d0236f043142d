// Package config provides YAML-based game configuration loading,
// difficulty presets and the score progression rule for the crossing game.
package config

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Enemies     []EnemySpawn      `yaml:"enemies"`
	Token       TokenSpawn        `yaml:"token"`
	Progression ProgressionConfig `yaml:"progression"`
}

// GameplayConfig defines the player's starting conditions.
type GameplayConfig struct {
	Lives  int     `yaml:"lives"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// EnemySpawn places one enemy at game start.
type EnemySpawn struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"`
}

// TokenSpawn places the first token at game start.
type TokenSpawn struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ProgressionConfig defines how score milestones raise the level.
type ProgressionConfig struct {
	Enabled        bool `yaml:"enabled"`
	MilestoneEvery int  `yaml:"milestone_every"` // Goal-crossing score multiple that spawns an enemy
	MaxSpawnSpeed  int  `yaml:"max_spawn_speed"` // Spawned enemy speed is drawn from [1, max]
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
