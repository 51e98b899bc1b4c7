// Package config provides YAML-based game configuration loading and
// difficulty management for the digger platform.
package config

import (
	"errors"
	"fmt"
	"math"
)

// DiggerConfig contains all configuration for the Digger game.
type DiggerConfig struct {
	Grid       DiggerGrid       `yaml:"grid"`
	Player     DiggerPlayer     `yaml:"player"`
	Creatures  DiggerCreatures  `yaml:"creatures"`
	Bags       DiggerBags       `yaml:"bags"`
	Scoring    DiggerScoring    `yaml:"scoring"`
	Bonus      DiggerBonus      `yaml:"bonus"`
	Level      DiggerLevel      `yaml:"level"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Ramp is a value that changes linearly with the level number:
// Base + PerLevel*level, kept within [Min, Max]. A zero bound is open.
type Ramp struct {
	Base     float64 `yaml:"base"`
	PerLevel float64 `yaml:"per_level"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
}

// At evaluates the ramp for a level.
func (r Ramp) At(level int) float64 {
	v := r.Base + r.PerLevel*float64(level)
	if r.Max != 0 {
		v = math.Min(v, r.Max)
	}
	if r.Min != 0 {
		v = math.Max(v, r.Min)
	}
	return v
}

// DiggerGrid defines the playfield size in tiles.
type DiggerGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DiggerPlayer defines player parameters. Speeds are tiles per second,
// durations are seconds.
type DiggerPlayer struct {
	Lives     int     `yaml:"lives"`
	Speed     float64 `yaml:"speed"`
	ShotSpeed float64 `yaml:"shot_speed"`
	ShotDelay Ramp    `yaml:"shot_delay"`
}

// DiggerCreatures defines creature spawning and movement.
type DiggerCreatures struct {
	Speed           Ramp    `yaml:"speed"`
	SpawnInterval   Ramp    `yaml:"spawn_interval"`
	Quota           Ramp    `yaml:"quota"`
	FirstSpawnDelay float64 `yaml:"first_spawn_delay"`
	MaxAlive        int     `yaml:"max_alive"` // 0 means no cap
	TransformMin    float64 `yaml:"transform_min"`
	TransformMax    float64 `yaml:"transform_max"`
}

// DiggerBags defines bag physics.
type DiggerBags struct {
	WobbleTime  float64 `yaml:"wobble_time"`
	FallSpeed   float64 `yaml:"fall_speed"`
	TreasureMin int     `yaml:"treasure_min_fall"` // Tiles fallen to break into treasure
}

// DiggerScoring defines point values and the extra-life economy.
type DiggerScoring struct {
	Emerald            int `yaml:"emerald"`
	StreakLength       int `yaml:"streak_length"`
	StreakBonus        int `yaml:"streak_bonus"`
	Treasure           int `yaml:"treasure"`
	ShotKill           int `yaml:"shot_kill"`
	ExtraLifeAt        int `yaml:"extra_life_at"`
	ExtraLifeIncrement int `yaml:"extra_life_increment"`
}

// DiggerBonus defines bonus mode.
type DiggerBonus struct {
	ItemPoints int  `yaml:"item_points"`
	BaseKill   int  `yaml:"base_kill"`
	MaxChain   int  `yaml:"max_chain"`
	Duration   Ramp `yaml:"duration"`
}

// DiggerLevel defines level population and transitions.
type DiggerLevel struct {
	MinEmeralds   int     `yaml:"min_emeralds"`
	EmeraldChance float64 `yaml:"emerald_chance"` // Per interior tile
	BagChance     float64 `yaml:"bag_chance"`     // Per interior tile, drawn after the emerald chance
	ClearDelay    float64 `yaml:"clear_delay"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	LevelOffset int               `yaml:"level_offset"` // Added to the level before ramps are read
	Progression ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level after which ramps stop moving; 0 means never
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// LevelOffsetForPreset returns the level_offset for a difficulty preset.
func LevelOffsetForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return -1
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c DiggerConfig) Validate() error {
	var errs []error
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		errs = append(errs, fmt.Errorf("grid must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player.lives must be positive, got %d", c.Player.Lives))
	}
	if c.Player.Speed <= 0 || c.Player.ShotSpeed <= 0 {
		errs = append(errs, errors.New("player speeds must be positive"))
	}
	if c.Creatures.Speed.At(1) <= 0 {
		errs = append(errs, errors.New("creature speed must be positive"))
	}
	if c.Creatures.TransformMax < c.Creatures.TransformMin {
		errs = append(errs, errors.New("creatures.transform_max must not be below transform_min"))
	}
	if c.Bags.FallSpeed <= 0 {
		errs = append(errs, errors.New("bags.fall_speed must be positive"))
	}
	if c.Scoring.StreakLength <= 0 {
		errs = append(errs, errors.New("scoring.streak_length must be positive"))
	}
	if c.Level.MinEmeralds <= 0 {
		errs = append(errs, errors.New("level.min_emeralds must be positive"))
	}
	return errors.Join(errs...)
}
