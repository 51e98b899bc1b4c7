package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDigger loads Digger configuration.
// Search order: customPath -> ~/.digger/configs/digger.yaml -> ./configs/digger.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadDigger(customPath string) (DiggerConfig, error) {
	cfg := DefaultDiggerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("digger.yaml"), filepath.Join("configs", "digger.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultDiggerConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultDiggerConfig()
	if err := yaml.Unmarshal(defaultDiggerYAML, &embedded); err != nil {
		return DefaultDiggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".digger", "configs", filename)
}

// ApplyDiggerPreset modifies the config based on a difficulty preset.
func ApplyDiggerPreset(cfg *DiggerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.LevelOffset = LevelOffsetForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Bonus.Duration.Base += 4
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Creatures.FirstSpawnDelay = 0.5
	}
}
