package letterfall

import (
	"math"
	"math/rand"
)

// spawnInterval returns the current time between spawns in milliseconds:
// the base interval shrinks 5% per level, clamped to the configured floor
// so high levels cannot degenerate into a letter flood.
func (g *Game) spawnInterval() float64 {
	interval := g.cfg.Letters.BaseSpawnIntervalMs * math.Pow(0.95, float64(g.level-1))
	if interval < g.cfg.Letters.MinSpawnIntervalMs {
		interval = g.cfg.Letters.MinSpawnIntervalMs
	}
	return interval
}

// letterSpeed returns the fall speed for a new letter of the given type:
// base speed grows 10% per level, fast letters move half again as quick.
func (g *Game) letterSpeed(t LetterType) float64 {
	speed := g.cfg.Letters.BaseSpeed * math.Pow(1.1, float64(g.level-1))
	if t == TypeFast {
		speed *= 1.5
	}
	return speed
}

// pickLetterType draws a type for a new letter.
// Each type gets an independent uniform draw against its own threshold in
// declaration order and the first hit wins, falling back to normal. This
// is not a normalized categorical distribution; the skew is part of the
// game's feel and must not be "corrected".
func pickLetterType(rng *rand.Rand) LetterType {
	for _, t := range letterTypes {
		if rng.Float64() < t.SpawnChance() {
			return t
		}
	}
	return TypeNormal
}

// updateSpawner emits a new letter when the spawn clock comes due.
// Called only while the game is active and non-terminal.
func (g *Game) updateSpawner() {
	if g.elapsedMs() < g.nextSpawnMs {
		return
	}
	g.spawnLetter()
	g.nextSpawnMs = g.elapsedMs() + g.spawnInterval()
}

// spawnLetter inserts one new letter at the top of the playfield.
func (g *Game) spawnLetter() {
	t := pickLetterType(g.rng)

	id := g.nextEntityID
	g.nextEntityID++

	g.letters = append(g.letters, &Letter{
		ID:       id,
		Char:     rune('A' + g.rng.Intn(26)),
		Type:     t,
		X:        g.rng.Float64() * (g.cfg.Playfield.Width - g.cfg.Playfield.LetterWidth),
		Y:        0,
		Rotation: g.rng.Intn(360),
		Scale:    1,
		Speed:    g.letterSpeed(t),
	})
}
