package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// LoadCrossing loads the crossing configuration.
// Search order: customPath -> ~/.arcade/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
func LoadCrossing(customPath string) (CrossingConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrossingConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CrossingConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("crossing.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "crossing.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultCrossingYAML)
	if err != nil {
		return DefaultCrossingConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Fields missing from the document keep their default values.
func Parse(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrossingConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CrossingConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c CrossingConfig) Validate() error {
	if c.Gameplay.Lives < 1 {
		return fmt.Errorf("config: lives must be at least 1, got %d", c.Gameplay.Lives)
	}
	if len(c.Enemies) == 0 {
		return errors.New("config: at least one enemy is required")
	}
	for i, e := range c.Enemies {
		if e.Speed < 0 {
			return fmt.Errorf("config: enemy %d has negative speed %v", i, e.Speed)
		}
	}
	if c.Progression.MilestoneEvery < 1 {
		return fmt.Errorf("config: milestone_every must be at least 1, got %d", c.Progression.MilestoneEvery)
	}
	if c.Progression.MaxSpawnSpeed < 1 {
		return fmt.Errorf("config: max_spawn_speed must be at least 1, got %d", c.Progression.MaxSpawnSpeed)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ParsePreset converts a CLI value into a preset. The empty string means
// "use the config as loaded" and returns an empty preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemies = append(cfg.Enemies, EnemySpawn{X: -50, Y: 150, Speed: 120})
	case DifficultyFixed:
		cfg.Progression.Enabled = false
	}
}

// Marshal encodes cfg as YAML in the same layout the loader reads.
func Marshal(cfg CrossingConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
