package letterfall

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/registry"
)

// Game phase constants.
const (
	StateNotStarted = "not_started" // Idle screen, waiting for start
	StateActive     = "active"      // Letters falling, input accepted
	StateGameOver   = "game_over"   // City health exhausted
	StateVictory    = "victory"     // Target score reached
)

// Package-level variables for config path / difficulty set via CLI
// before the game instance is created (same pattern as the menu flow).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the letterfall simulation core.
// All state is owned by the tick loop: input frames are applied at tick
// boundaries and nothing here is safe for concurrent mutation.
type Game struct {
	rng        *rand.Rand
	cfg        config.LetterfallConfig
	cfgLoaded  bool // true when cfg was injected via NewFromConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	tick      uint64
	msPerTick float64

	phase  string
	paused bool

	score      int
	highScore  int
	level      int
	combo      int
	cityHealth int
	lastPoints int

	// Combo bookkeeping. comboExpiresAt is a tick deadline checked every
	// step; scheduling a new match simply moves the deadline, so there is
	// no timer to cancel.
	hasMatched     bool
	lastMatchTick  uint64
	comboExpiresAt uint64

	powerUpActive bool

	nextEntityID int
	letters      []*Letter
	buildings    []*Building
	particles    []*Particle

	// nextSpawnMs is the simulation-clock time of the next letter spawn.
	nextSpawnMs float64
}

// New creates a new letterfall game. Configuration is loaded on Reset.
func New() *Game {
	return &Game{}
}

// NewFromConfig creates a game with an explicit, validated configuration.
// Used by tests and callers that manage config themselves; Reset will not
// reload from disk.
func NewFromConfig(cfg config.LetterfallConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, cfgLoaded: true}, nil
}

func init() {
	registry.Register("letterfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "letterfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Letterfall"
}

// Reset initializes or restarts the whole game.
// The high score survives; everything else is rebuilt, including a fresh
// randomized skyline.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.cfgLoaded {
		// A custom config path is validated by the CLI before the game
		// exists; the default fallback covers only the optional search
		// chain.
		cfg, err := config.LoadLetterfall(configPath)
		if err != nil {
			cfg = config.DefaultLetterfallConfig()
		}
		if difficultyPreset != "" {
			config.ApplyLetterfallPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.runtime = rt
	if rt.TickRate <= 0 {
		rt.TickRate = 60
		g.runtime.TickRate = 60
	}
	g.msPerTick = 1000.0 / float64(rt.TickRate)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0

	g.initRun()
}

// initRun resets per-run state without touching the RNG or high score.
func (g *Game) initRun() {
	g.phase = StateNotStarted
	g.paused = false
	g.score = 0
	g.level = g.cfg.Difficulty.StartLevel
	g.combo = 0
	g.cityHealth = g.cfg.Gameplay.CityHealth
	g.lastPoints = 0
	g.hasMatched = false
	g.lastMatchTick = 0
	g.comboExpiresAt = 0
	g.powerUpActive = false
	g.letters = nil
	g.particles = nil
	g.nextSpawnMs = 0
	g.generateBuildings()
}

// generateBuildings lays out a fresh skyline: one building per slot with
// randomized width, height and offset, so spans never overlap and gaps
// between buildings are legitimate miss zones.
func (g *Game) generateBuildings() {
	count := g.cfg.Playfield.BuildingCount
	slot := g.cfg.Playfield.Width / float64(count)
	fieldH := g.cfg.Playfield.Height

	g.buildings = make([]*Building, 0, count)
	for i := 0; i < count; i++ {
		w := slot * (0.55 + g.rng.Float64()*0.35)
		h := fieldH*0.08 + g.rng.Float64()*fieldH*0.15
		x := slot*float64(i) + g.rng.Float64()*(slot-w)
		g.buildings = append(g.buildings, &Building{
			ID:     i,
			X:      x,
			Width:  w,
			Height: h,
			Health: maxBuildingHealth,
		})
	}
}

// Start begins a run from the idle screen.
func (g *Game) Start() {
	if g.phase != StateNotStarted {
		return
	}
	g.phase = StateActive
	g.nextSpawnMs = g.elapsedMs() + g.spawnInterval()
}

// ResetRun returns a finished game to the idle screen for another run.
// Score, combo, city health and entities reset; the high score is kept.
func (g *Game) ResetRun() {
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.initRun()
}

// SetLevel overrides the current level. Exposed as the progression hook:
// the original design never advances the level on its own, so external
// callers (or the difficulty manager) decide when it moves.
func (g *Game) SetLevel(level int) {
	if level < 1 {
		level = 1
	}
	g.level = level
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.level
}

// terminal reports whether the run has ended.
func (g *Game) terminal() bool {
	return g.phase == StateGameOver || g.phase == StateVictory
}

// elapsedMs returns the simulation clock in milliseconds.
// Derived purely from the tick count so runs are reproducible.
func (g *Game) elapsedMs() float64 {
	return float64(g.tick) * g.msPerTick
}

// ticksFor converts a duration in milliseconds to whole ticks, minimum 1.
func (g *Game) ticksFor(ms float64) uint64 {
	t := uint64(math.Round(ms / g.msPerTick))
	if t == 0 {
		t = 1
	}
	return t
}

// Step advances the game by one tick. The input frame is everything the
// platform collected since the previous tick, applied atomically here.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.terminal() {
		g.ResetRun()
	}
	if (in.Has(core.ActionStart) || in.Has(core.ActionConfirm)) && g.phase == StateNotStarted {
		g.Start()
	}
	if in.Has(core.ActionPause) && g.phase == StateActive {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.phase == StateActive {
		// Keystrokes first: input belongs to the boundary before this
		// tick's motion.
		for _, r := range in.Runes {
			g.KeyPress(r)
		}

		if g.difficulty.IsEnabled() {
			g.level = g.difficulty.Level(g.score, g.tick)
		}

		g.expireCombo()
	}

	if g.phase == StateActive {
		g.updateLetters()
		if g.cityHealth <= 0 {
			g.phase = StateGameOver
		}
	}

	if g.phase == StateActive {
		g.updateSpawner()
	}

	// Particles keep decaying after a terminal state; only letter motion
	// and spawning stop.
	g.updateParticles()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	high := g.highScore
	if g.score > high {
		high = g.score
	}
	return core.GameState{
		Score:      g.score,
		HighScore:  high,
		Level:      g.level,
		Combo:      g.combo,
		CityHealth: g.cityHealth,
		Active:     g.phase == StateActive && !g.paused,
		GameOver:   g.terminal(),
		Victory:    g.phase == StateVictory,
		Paused:     g.paused,
	}
}
