// Package letterfall implements the falling-letter city defense game.
// Letters drop toward a skyline; typing a letter's character destroys it
// for points, letters that land damage buildings. The package is a pure,
// deterministic simulation core: all timing is tick-based, all randomness
// comes from the seeded RNG, and rendering consumes snapshots.
package letterfall

import (
	"fmt"

	"github.com/vovakirdan/letterfall/internal/core"
)

// LetterType classifies a falling letter.
// Declaration order matters: the spawner tries each type's spawn chance in
// this exact order and takes the first hit, which skews the effective
// distribution toward earlier entries. Kept that way on purpose.
type LetterType int

const (
	TypeNormal LetterType = iota
	TypeFast
	TypeBonus
	TypePower
)

// letterTypes lists all types in spawn-check order.
var letterTypes = [...]LetterType{TypeNormal, TypeFast, TypeBonus, TypePower}

// Points returns the base score for matching a letter of this type.
func (t LetterType) Points() int {
	switch t {
	case TypeNormal:
		return 100
	case TypeFast:
		return 200
	case TypeBonus:
		return 300
	case TypePower:
		return 150
	default:
		return 0
	}
}

// SpawnChance returns the acceptance threshold used by the spawner.
func (t LetterType) SpawnChance() float64 {
	switch t {
	case TypeNormal:
		return 0.65
	case TypeFast:
		return 0.15
	case TypeBonus:
		return 0.12
	case TypePower:
		return 0.08
	default:
		return 0
	}
}

// Color returns the render color for this letter type.
func (t LetterType) Color() core.Color {
	switch t {
	case TypeFast:
		return core.ColorBrightRed
	case TypeBonus:
		return core.ColorBrightYellow
	case TypePower:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightWhite
	}
}

// String returns a short name for the letter type.
func (t LetterType) String() string {
	switch t {
	case TypeNormal:
		return "normal"
	case TypeFast:
		return "fast"
	case TypeBonus:
		return "bonus"
	case TypePower:
		return "power"
	default:
		return "unknown"
	}
}

// Letter is a falling typed target.
// Created by the spawner, moved by the physics step, removed either by a
// keystroke match or by reaching the impact line, never both.
type Letter struct {
	ID       int
	Char     rune // 'A'..'Z'
	Type     LetterType
	X, Y     float64
	Rotation int     // degrees, wraps at 360
	Scale    float64 // cosmetic pulse, reproducible from the tick clock
	Speed    float64 // cells per tick, > 0
}

// Validate checks letter invariants.
func (l Letter) Validate() error {
	if l.Char < 'A' || l.Char > 'Z' {
		return fmt.Errorf("letterfall: letter char %q outside A-Z", l.Char)
	}
	if l.Speed <= 0 {
		return fmt.Errorf("letterfall: letter speed must be positive, got %f", l.Speed)
	}
	if l.Rotation < 0 || l.Rotation >= 360 {
		return fmt.Errorf("letterfall: letter rotation %d outside [0,360)", l.Rotation)
	}
	return nil
}

// maxBuildingHealth is the hit count a fresh building survives minus one.
const maxBuildingHealth = 3

// Building is one structure of the defended skyline.
// Mutated only by the collision resolver.
type Building struct {
	ID        int
	X         float64
	Width     float64
	Height    float64
	Health    int // 0..3
	Destroyed bool

	// ShakeUntilTick is the tick deadline of the hit-feedback shake.
	// Checked by comparison each tick; no timer callbacks exist.
	ShakeUntilTick uint64
}

// Spans reports whether the horizontal span [X, X+Width] contains x.
func (b *Building) Spans(x float64) bool {
	return x >= b.X && x <= b.X+b.Width
}

// Shaking reports whether the shake hint is active at the given tick.
func (b *Building) Shaking(tick uint64) bool {
	return tick < b.ShakeUntilTick
}

// Validate checks building invariants.
func (b Building) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("letterfall: building %d has non-positive dimensions %.1fx%.1f", b.ID, b.Width, b.Height)
	}
	if b.Health < 0 || b.Health > maxBuildingHealth {
		return fmt.Errorf("letterfall: building %d health %d outside [0,%d]", b.ID, b.Health, maxBuildingHealth)
	}
	if b.Destroyed != (b.Health == 0) {
		return fmt.Errorf("letterfall: building %d destroyed=%v inconsistent with health=%d", b.ID, b.Destroyed, b.Health)
	}
	return nil
}

// Particle is a short-lived explosion fragment.
type Particle struct {
	ID     int
	X, Y   float64
	VX, VY float64
	Color  core.Color
	Life   float64 // (0,1]; dead at <= 0
	Size   float64
}

// Validate checks particle invariants.
func (p Particle) Validate() error {
	if p.Life <= 0 || p.Life > 1 {
		return fmt.Errorf("letterfall: particle life %f outside (0,1]", p.Life)
	}
	if p.Size <= 0 {
		return fmt.Errorf("letterfall: particle size must be positive, got %f", p.Size)
	}
	return nil
}
