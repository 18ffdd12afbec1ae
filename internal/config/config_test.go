package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultLetterfallConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LetterfallConfig)
	}{
		{"zero width", func(c *LetterfallConfig) { c.Playfield.Width = 0 }},
		{"negative height", func(c *LetterfallConfig) { c.Playfield.Height = -600 }},
		{"zero buildings", func(c *LetterfallConfig) { c.Playfield.BuildingCount = 0 }},
		{"letter wider than field", func(c *LetterfallConfig) { c.Playfield.LetterWidth = 9000 }},
		{"zero base speed", func(c *LetterfallConfig) { c.Letters.BaseSpeed = 0 }},
		{"min interval above base", func(c *LetterfallConfig) { c.Letters.MinSpawnIntervalMs = 99999 }},
		{"zero target score", func(c *LetterfallConfig) { c.Gameplay.TargetScore = 0 }},
		{"zero city health", func(c *LetterfallConfig) { c.Gameplay.CityHealth = 0 }},
		{"city outlives skyline", func(c *LetterfallConfig) {
			c.Gameplay.CityHealth = c.Playfield.BuildingCount*CityDamagePerBuilding + 1
		}},
		{"zero combo multiplier", func(c *LetterfallConfig) { c.Gameplay.ComboMaxMultiplier = 0 }},
		{"zero particle cap", func(c *LetterfallConfig) { c.Particles.Max = 0 }},
		{"life decay above one", func(c *LetterfallConfig) { c.Particles.LifeDecay = 1.5 }},
		{"max level below start", func(c *LetterfallConfig) { c.Difficulty.StartLevel = 5; c.Difficulty.MaxLevel = 2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLetterfallConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should reject this config")
			}
		})
	}
}

func TestLoadLetterfallEmbeddedDefault(t *testing.T) {
	// No custom path and no user/local config in a test environment:
	// should fall through to the embedded default.
	cfg, err := LoadLetterfall("")
	if err != nil {
		t.Fatalf("LoadLetterfall(\"\") failed: %v", err)
	}

	if cfg.Playfield.Width != 800 || cfg.Playfield.Height != 600 {
		t.Errorf("embedded default playfield = %.0fx%.0f, expected 800x600",
			cfg.Playfield.Width, cfg.Playfield.Height)
	}
	if cfg.Gameplay.TargetScore != 10000 {
		t.Errorf("embedded default target_score = %d, expected 10000", cfg.Gameplay.TargetScore)
	}
	if cfg.Difficulty.Progression.Type != "none" {
		t.Errorf("embedded default progression type = %q, expected none", cfg.Difficulty.Progression.Type)
	}
}

func TestLoadLetterfallCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
playfield:
  width: 400
  height: 300
  building_count: 4
  letter_width: 20
  impact_margin: 10
letters:
  base_speed: 2.0
  base_spawn_interval_ms: 1000
  min_spawn_interval_ms: 100
gameplay:
  target_score: 500
  city_health: 40
  combo_window_ms: 800
  combo_max_multiplier: 5
  shake_duration_ms: 150
particles:
  max: 60
  burst_size: 10
  drag: 0.95
  gravity: 0.3
  life_decay: 0.05
difficulty:
  enabled: true
  start_level: 2
  max_level: 6
  progression:
    type: score
    max_at: 400
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadLetterfall(path)
	if err != nil {
		t.Fatalf("LoadLetterfall(custom) failed: %v", err)
	}

	if cfg.Playfield.Width != 400 || cfg.Gameplay.TargetScore != 500 {
		t.Errorf("custom config not applied: %+v", cfg)
	}
	if cfg.Difficulty.StartLevel != 2 || cfg.Difficulty.Progression.Type != "score" {
		t.Errorf("custom difficulty not applied: %+v", cfg.Difficulty)
	}
}

func TestLoadLetterfallRejectsInvalidCustom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	// Parses fine but building_count is zero.
	yaml := `
playfield:
  width: 800
  height: 600
  building_count: 0
  letter_width: 30
  impact_margin: 20
letters:
  base_speed: 1.0
  base_spawn_interval_ms: 2000
  min_spawn_interval_ms: 200
gameplay:
  target_score: 10000
  city_health: 100
  combo_window_ms: 1000
  combo_max_multiplier: 10
  shake_duration_ms: 200
particles:
  max: 150
  burst_size: 20
  drag: 0.98
  gravity: 0.2
  life_decay: 0.02
difficulty:
  start_level: 1
  max_level: 10
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := LoadLetterfall(path); err == nil {
		t.Error("LoadLetterfall should reject a config with zero buildings")
	}
}

func TestLoadLetterfallCustomPathFailsLoud(t *testing.T) {
	dir := t.TempDir()

	// A custom path that cannot be read is an error, never a silent
	// fall-through to defaults.
	if _, err := LoadLetterfall(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadLetterfall should fail for an unreadable custom path")
	}

	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("playfield:\n  width: -5\n"), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if _, err := LoadLetterfall(path); err == nil {
		t.Error("LoadLetterfall should reject a negative playfield width")
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     false,
		StartLevel:  3,
		MaxLevel:    10,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})

	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if lvl := dm.Level(99999, 99999); lvl != 3 {
		t.Errorf("disabled manager level = %d, expected start level 3", lvl)
	}
}

func TestDifficultyManagerScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		StartLevel:  1,
		MaxLevel:    9,
		Progression: ProgressionConfig{Type: "score", MaxAt: 800},
	})

	if lvl := dm.Level(0, 0); lvl != 1 {
		t.Errorf("level at score 0 = %d, expected 1", lvl)
	}
	if lvl := dm.Level(400, 0); lvl != 5 {
		t.Errorf("level at half progress = %d, expected 5", lvl)
	}
	if lvl := dm.Level(800, 0); lvl != 9 {
		t.Errorf("level at max = %d, expected 9", lvl)
	}
	// Past the cap it stays clamped
	if lvl := dm.Level(5000, 0); lvl != 9 {
		t.Errorf("level past max = %d, expected 9", lvl)
	}
}

func TestDifficultyManagerTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		StartLevel:  2,
		MaxLevel:    4,
		Progression: ProgressionConfig{Type: "time", MaxAt: 3600},
	})

	if lvl := dm.Level(0, 0); lvl != 2 {
		t.Errorf("level at tick 0 = %d, expected 2", lvl)
	}
	if lvl := dm.Level(0, 3600); lvl != 4 {
		t.Errorf("level at max ticks = %d, expected 4", lvl)
	}
}

func TestApplyLetterfallPreset(t *testing.T) {
	cfg := DefaultLetterfallConfig()
	ApplyLetterfallPreset(&cfg, DifficultyHard)
	if cfg.Letters.BaseSpawnIntervalMs != 1500 || cfg.Difficulty.StartLevel != 3 {
		t.Errorf("hard preset not applied: %+v", cfg.Letters)
	}

	cfg = DefaultLetterfallConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Progression.Type = "score"
	ApplyLetterfallPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled || cfg.Difficulty.Progression.Type != "none" {
		t.Errorf("fixed preset should disable progression: %+v", cfg.Difficulty)
	}
}
