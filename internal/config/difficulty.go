package config

import "math"

// DifficultyManager derives the current game level from score/time.
// The level feeds the spawner (interval shrink) and physics (speed growth);
// with progression disabled the level stays at start_level for the whole run.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.StartLevel < 1 {
		cfg.StartLevel = 1
	}
	if cfg.MaxLevel < cfg.StartLevel {
		cfg.MaxLevel = cfg.StartLevel
	}
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether level progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress returns progression in [0, 1] based on score/ticks.
func (d *DifficultyManager) progress(score int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		return 0
	}

	var p float64
	switch d.cfg.Progression.Type {
	case "score":
		p = float64(score) / maxAt
	case "time":
		p = float64(ticks) / maxAt
	default:
		return 0
	}

	return math.Max(0, math.Min(1, p))
}

// Level returns the current integer game level (start_level..max_level).
func (d *DifficultyManager) Level(score int, ticks uint64) int {
	span := float64(d.cfg.MaxLevel - d.cfg.StartLevel)
	return d.cfg.StartLevel + int(math.Round(d.progress(score, ticks)*span))
}
