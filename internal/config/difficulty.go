package config

import "math"

// DifficultyManager maps a level number to the level that per-level ramps
// are read at.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// EffectiveLevel returns the level ramps are evaluated at. Without
// progression every level plays like the first. The result is never negative.
func (d *DifficultyManager) EffectiveLevel(level int) int {
	if !d.IsEnabled() {
		level = 1
	} else if maxAt := d.cfg.Progression.MaxAt; maxAt > 0 && level > maxAt {
		level = maxAt
	}
	return max(0, level+d.cfg.LevelOffset)
}

// Value reads a ramp for a 1-based level number.
func (d *DifficultyManager) Value(r Ramp, level int) float64 {
	return r.At(d.EffectiveLevel(level))
}

// Count reads a ramp as a whole number, rounding to nearest.
func (d *DifficultyManager) Count(r Ramp, level int) int {
	return int(math.Round(d.Value(r, level)))
}
