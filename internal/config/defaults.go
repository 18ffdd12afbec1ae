package config

import (
	_ "embed"
)

//go:embed defaults/letterfall.yaml
var defaultLetterfallYAML []byte

// DefaultLetterfallConfig returns the default letterfall configuration.
// Kept in sync with defaults/letterfall.yaml; used as a hardcoded fallback
// if the embedded YAML somehow fails to parse.
func DefaultLetterfallConfig() LetterfallConfig {
	return LetterfallConfig{
		Playfield: PlayfieldConfig{
			Width:         800,
			Height:        600,
			BuildingCount: 10,
			LetterWidth:   30,
			ImpactMargin:  20,
		},
		Letters: LettersConfig{
			BaseSpeed:           1.0,
			BaseSpawnIntervalMs: 2000,
			MinSpawnIntervalMs:  200,
		},
		Gameplay: GameplayConfig{
			TargetScore:        10000,
			CityHealth:         100,
			ComboWindowMs:      1000,
			ComboMaxMultiplier: 10,
			ShakeDurationMs:    200,
		},
		Particles: ParticlesConfig{
			Max:       150,
			BurstSize: 20,
			Drag:      0.98,
			Gravity:   0.2,
			LifeDecay: 0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:    false,
			StartLevel: 1,
			MaxLevel:   10,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	if gameID == "letterfall" {
		return defaultLetterfallYAML
	}
	return nil
}
