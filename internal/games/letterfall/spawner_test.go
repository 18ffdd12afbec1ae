package letterfall

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/letterfall/internal/core"
)

func TestSpawnIntervalShrinksWithLevel(t *testing.T) {
	g := newTestGame(t)

	g.level = 1
	base := g.spawnInterval()
	if base != g.cfg.Letters.BaseSpawnIntervalMs {
		t.Errorf("Level 1 interval should equal base, got %f", base)
	}

	prev := base
	for level := 2; level <= 10; level++ {
		g.level = level
		interval := g.spawnInterval()
		if interval >= prev {
			t.Errorf("Interval should shrink with level: level %d gave %f >= %f", level, interval, prev)
		}
		prev = interval
	}

	g.level = 2
	want := g.cfg.Letters.BaseSpawnIntervalMs * 0.95
	if got := g.spawnInterval(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Level 2 interval: expected %f, got %f", want, got)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	g := newTestGame(t)
	g.level = 100

	if got := g.spawnInterval(); got != g.cfg.Letters.MinSpawnIntervalMs {
		t.Errorf("Expected interval clamped to %f, got %f", g.cfg.Letters.MinSpawnIntervalMs, got)
	}
}

func TestLetterSpeedScaling(t *testing.T) {
	g := newTestGame(t)

	g.level = 1
	base := g.cfg.Letters.BaseSpeed
	if got := g.letterSpeed(TypeNormal); math.Abs(got-base) > 1e-9 {
		t.Errorf("Level 1 normal speed: expected %f, got %f", base, got)
	}
	if got := g.letterSpeed(TypeFast); math.Abs(got-base*1.5) > 1e-9 {
		t.Errorf("Level 1 fast speed: expected %f, got %f", base*1.5, got)
	}

	g.level = 3
	want := base * 1.1 * 1.1
	if got := g.letterSpeed(TypeNormal); math.Abs(got-want) > 1e-9 {
		t.Errorf("Level 3 normal speed: expected %f, got %f", want, got)
	}
	if got := g.letterSpeed(TypeFast); math.Abs(got-want*1.5) > 1e-9 {
		t.Errorf("Level 3 fast speed: expected %f, got %f", want*1.5, got)
	}
}

func TestPickLetterTypeDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	counts := make(map[LetterType]int)
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[pickLetterType(rng)]++
	}

	for _, lt := range letterTypes {
		if counts[lt] == 0 {
			t.Errorf("Type %v never drawn in %d draws", lt, draws)
		}
	}

	// The sequential first-hit scheme plus the normal fallback makes
	// normal letters dominate heavily.
	if counts[TypeNormal] < draws/2 {
		t.Errorf("Normal should dominate, got %d of %d", counts[TypeNormal], draws)
	}
	if counts[TypeNormal] <= counts[TypeFast] ||
		counts[TypeFast] <= counts[TypePower] {
		t.Errorf("Unexpected ordering: %v", counts)
	}
}

func TestSpawnedLettersValid(t *testing.T) {
	g := newActiveGame(t)

	for i := 0; i < 200; i++ {
		g.spawnLetter()
	}

	maxX := g.cfg.Playfield.Width - g.cfg.Playfield.LetterWidth
	for _, l := range g.letters {
		if err := l.Validate(); err != nil {
			t.Fatalf("Spawned letter invalid: %v", err)
		}
		if l.X < 0 || l.X > maxX {
			t.Errorf("Letter X %f outside [0, %f]", l.X, maxX)
		}
		if l.Y != 0 {
			t.Errorf("Letter should spawn at top, got Y=%f", l.Y)
		}
	}
}

func TestSpawnedIDsUnique(t *testing.T) {
	g := newActiveGame(t)

	for i := 0; i < 50; i++ {
		g.spawnLetter()
	}

	seen := make(map[int]bool)
	for _, l := range g.letters {
		if seen[l.ID] {
			t.Fatalf("Duplicate letter ID %d", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestSpawnerSchedule(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	input.Set(core.ActionStart)
	g.Step(input)

	// Base interval is 2000ms; at 60 ticks/s nothing spawns in the first
	// ~1.6 seconds.
	stepN(g, 100)
	if len(g.letters) != 0 {
		t.Fatalf("Letter spawned too early, count=%d", len(g.letters))
	}

	stepN(g, 200)
	if len(g.letters) == 0 {
		t.Error("Expected at least one spawn after the interval elapsed")
	}
}
