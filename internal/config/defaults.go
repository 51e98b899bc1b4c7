package config

import (
	_ "embed"
)

//go:embed defaults/digger.yaml
var defaultDiggerYAML []byte

// DefaultDiggerConfig returns the default Digger configuration.
// It mirrors defaults/digger.yaml and is used when the embedded file
// cannot be parsed.
func DefaultDiggerConfig() DiggerConfig {
	return DiggerConfig{
		Grid: DiggerGrid{
			Width:  20,
			Height: 14,
		},
		Player: DiggerPlayer{
			Lives:     3,
			Speed:     6.3,
			ShotSpeed: 12.0,
			ShotDelay: Ramp{Base: 0.29, PerLevel: 0.04, Min: 0.18},
		},
		Creatures: DiggerCreatures{
			Speed:           Ramp{Base: 2.2, PerLevel: 0.32, Max: 5.8},
			SpawnInterval:   Ramp{Base: 2.4, PerLevel: -0.16, Min: 0.85},
			Quota:           Ramp{Base: 4, PerLevel: 1, Max: 12},
			FirstSpawnDelay: 0.9,
			MaxAlive:        0,
			TransformMin:    8.0,
			TransformMax:    14.0,
		},
		Bags: DiggerBags{
			WobbleTime:  0.6,
			FallSpeed:   8.6,
			TreasureMin: 2,
		},
		Scoring: DiggerScoring{
			Emerald:            25,
			StreakLength:       8,
			StreakBonus:        250,
			Treasure:           500,
			ShotKill:           250,
			ExtraLifeAt:        20000,
			ExtraLifeIncrement: 20000,
		},
		Bonus: DiggerBonus{
			ItemPoints: 0,
			BaseKill:   200,
			MaxChain:   6,
			Duration:   Ramp{Base: 14, PerLevel: -0.55, Min: 7},
		},
		Level: DiggerLevel{
			MinEmeralds:   22,
			EmeraldChance: 0.12,
			BagChance:     0.05,
			ClearDelay:    1.2,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			LevelOffset: 0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "digger":
		return defaultDiggerYAML
	default:
		return nil
	}
}
