// Package registry decouples game construction from the platform layers.
// The game package registers a factory from init(), so the CLI and the
// SSH server can instantiate fresh simulations by ID without importing
// the game package directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/letterfall/internal/core"
)

// Game is the contract between a simulation core and the platform.
// Implementations hold pure game logic: no terminal I/O, no goroutines,
// no wall-clock time. The platform owns input mapping, tick pacing and
// presentation.
type Game interface {
	// ID is the stable identifier used for registration and run storage.
	ID() string

	// Title is the human-readable name shown in overlays.
	Title() string

	// Reset puts the game in its initial state for the given runtime.
	// Called before the first Step and on every full restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick. The frame holds
	// every action and typed rune gathered since the previous tick and
	// is applied atomically at the tick boundary.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State reports score, level and phase flags for the platform HUD.
	State() core.GameState
}

// Factory builds a fresh, un-reset game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register installs a factory under the given ID. Registering the same
// ID twice is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a factory is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}
