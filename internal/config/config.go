// Package config provides YAML-based game configuration loading and
// difficulty management for the letterfall platform.
package config

import "fmt"

// LetterfallConfig contains all configuration for the letterfall game.
type LetterfallConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Letters    LettersConfig    `yaml:"letters"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the simulation space and city layout.
// Dimensions are in abstract pixels; the renderer maps them to cells.
type PlayfieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BuildingCount int     `yaml:"building_count"`
	LetterWidth   float64 `yaml:"letter_width"`
	ImpactMargin  float64 `yaml:"impact_margin"`
}

// LettersConfig defines letter spawn pacing and motion.
type LettersConfig struct {
	BaseSpeed           float64 `yaml:"base_speed"`
	BaseSpawnIntervalMs float64 `yaml:"base_spawn_interval_ms"`
	MinSpawnIntervalMs  float64 `yaml:"min_spawn_interval_ms"`
}

// CityDamagePerBuilding is how much city health one destroyed building
// costs. Validation uses it to guarantee the skyline carries enough
// health to make defeat reachable.
const CityDamagePerBuilding = 10

// GameplayConfig defines scoring and win/loss parameters.
type GameplayConfig struct {
	TargetScore        int     `yaml:"target_score"`
	CityHealth         int     `yaml:"city_health"`
	ComboWindowMs      float64 `yaml:"combo_window_ms"`
	ComboMaxMultiplier int     `yaml:"combo_max_multiplier"`
	ShakeDurationMs    float64 `yaml:"shake_duration_ms"`
}

// ParticlesConfig defines the explosion particle subsystem.
type ParticlesConfig struct {
	Max       int     `yaml:"max"`
	BurstSize int     `yaml:"burst_size"`
	Drag      float64 `yaml:"drag"`
	Gravity   float64 `yaml:"gravity"`
	LifeDecay float64 `yaml:"life_decay"`
}

// DifficultyConfig defines the level progression hook.
// The original design never advances the level during play, so the default
// progression type is "none"; "score" and "time" interpolate the level from
// start_level toward max_level.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	StartLevel  int               `yaml:"start_level"`
	MaxLevel    int               `yaml:"max_level"`
	Progression ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how the level increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max_level is reached
}

// Validate checks the configuration for values the simulation cannot run
// with. Called at game initialization so bad configs fail fast instead of
// corrupting a run.
func (c LetterfallConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("config: playfield dimensions must be positive, got %.0fx%.0f",
			c.Playfield.Width, c.Playfield.Height)
	}
	if c.Playfield.BuildingCount <= 0 {
		return fmt.Errorf("config: building_count must be at least 1, got %d", c.Playfield.BuildingCount)
	}
	if c.Playfield.LetterWidth <= 0 || c.Playfield.LetterWidth > c.Playfield.Width {
		return fmt.Errorf("config: letter_width %.0f out of range for playfield width %.0f",
			c.Playfield.LetterWidth, c.Playfield.Width)
	}
	if c.Playfield.ImpactMargin < 0 || c.Playfield.ImpactMargin >= c.Playfield.Height {
		return fmt.Errorf("config: impact_margin %.0f out of range for playfield height %.0f",
			c.Playfield.ImpactMargin, c.Playfield.Height)
	}
	if c.Letters.BaseSpeed <= 0 {
		return fmt.Errorf("config: base_speed must be positive, got %f", c.Letters.BaseSpeed)
	}
	if c.Letters.BaseSpawnIntervalMs <= 0 {
		return fmt.Errorf("config: base_spawn_interval_ms must be positive, got %f", c.Letters.BaseSpawnIntervalMs)
	}
	if c.Letters.MinSpawnIntervalMs <= 0 || c.Letters.MinSpawnIntervalMs > c.Letters.BaseSpawnIntervalMs {
		return fmt.Errorf("config: min_spawn_interval_ms %f out of range", c.Letters.MinSpawnIntervalMs)
	}
	if c.Gameplay.TargetScore <= 0 {
		return fmt.Errorf("config: target_score must be positive, got %d", c.Gameplay.TargetScore)
	}
	if c.Gameplay.CityHealth <= 0 {
		return fmt.Errorf("config: city_health must be positive, got %d", c.Gameplay.CityHealth)
	}
	if c.Playfield.BuildingCount*CityDamagePerBuilding < c.Gameplay.CityHealth {
		return fmt.Errorf("config: city_health %d exceeds total skyline damage %d (%d buildings x %d); defeat would be unreachable",
			c.Gameplay.CityHealth, c.Playfield.BuildingCount*CityDamagePerBuilding,
			c.Playfield.BuildingCount, CityDamagePerBuilding)
	}
	if c.Gameplay.ComboWindowMs <= 0 {
		return fmt.Errorf("config: combo_window_ms must be positive, got %f", c.Gameplay.ComboWindowMs)
	}
	if c.Gameplay.ComboMaxMultiplier < 1 {
		return fmt.Errorf("config: combo_max_multiplier must be at least 1, got %d", c.Gameplay.ComboMaxMultiplier)
	}
	if c.Particles.Max <= 0 {
		return fmt.Errorf("config: particle max must be positive, got %d", c.Particles.Max)
	}
	if c.Particles.BurstSize <= 0 {
		return fmt.Errorf("config: particle burst_size must be positive, got %d", c.Particles.BurstSize)
	}
	if c.Particles.LifeDecay <= 0 || c.Particles.LifeDecay > 1 {
		return fmt.Errorf("config: particle life_decay must be in (0, 1], got %f", c.Particles.LifeDecay)
	}
	if c.Difficulty.StartLevel < 1 {
		return fmt.Errorf("config: start_level must be at least 1, got %d", c.Difficulty.StartLevel)
	}
	if c.Difficulty.MaxLevel < c.Difficulty.StartLevel {
		return fmt.Errorf("config: max_level %d below start_level %d",
			c.Difficulty.MaxLevel, c.Difficulty.StartLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyLetterfallPreset modifies the config based on a difficulty preset.
func ApplyLetterfallPreset(cfg *LetterfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Letters.BaseSpawnIntervalMs = 2500
		cfg.Letters.BaseSpeed = 0.8
		cfg.Difficulty.StartLevel = 1
	case DifficultyNormal:
		cfg.Difficulty.StartLevel = 1
	case DifficultyHard:
		cfg.Letters.BaseSpawnIntervalMs = 1500
		cfg.Letters.BaseSpeed = 1.3
		cfg.Difficulty.StartLevel = 3
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.Progression.Type = "none"
	}
}
