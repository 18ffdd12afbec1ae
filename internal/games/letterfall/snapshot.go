package letterfall

import "math"

// LetterView is a render/replay view of one falling letter.
type LetterView struct {
	ID       int
	Char     rune
	Type     LetterType
	X, Y     float64
	Rotation int
	Scale    float64
	Speed    float64
}

// BuildingView is a render/replay view of one skyline building.
type BuildingView struct {
	ID        int
	X         float64
	Width     float64
	Height    float64
	Health    int
	Destroyed bool
	Shaking   bool
}

// ParticleView is a render/replay view of one particle.
type ParticleView struct {
	X, Y  float64
	Color uint8
	Life  float64
	Size  float64
}

// Snapshot contains the complete observable game state for a tick.
// Uses value types only so copies are independent of the live game.
type Snapshot struct {
	Tick          uint64
	Phase         string
	Paused        bool
	Score         int
	HighScore     int
	Level         int
	Combo         int
	CityHealth    int
	LastPoints    int
	PowerUpActive bool

	Letters   []LetterView
	Buildings []BuildingView
	Particles []ParticleView
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	letters := make([]LetterView, len(g.letters))
	for i, l := range g.letters {
		letters[i] = LetterView{
			ID:       l.ID,
			Char:     l.Char,
			Type:     l.Type,
			X:        l.X,
			Y:        l.Y,
			Rotation: l.Rotation,
			Scale:    l.Scale,
			Speed:    l.Speed,
		}
	}

	buildings := make([]BuildingView, len(g.buildings))
	for i, b := range g.buildings {
		buildings[i] = BuildingView{
			ID:        b.ID,
			X:         b.X,
			Width:     b.Width,
			Height:    b.Height,
			Health:    b.Health,
			Destroyed: b.Destroyed,
			Shaking:   b.Shaking(g.tick),
		}
	}

	particles := make([]ParticleView, len(g.particles))
	for i, p := range g.particles {
		particles[i] = ParticleView{
			X:     p.X,
			Y:     p.Y,
			Color: uint8(p.Color),
			Life:  p.Life,
			Size:  p.Size,
		}
	}

	return Snapshot{
		Tick:          g.tick,
		Phase:         g.phase,
		Paused:        g.paused,
		Score:         g.score,
		HighScore:     g.highScore,
		Level:         g.level,
		Combo:         g.combo,
		CityHealth:    g.cityHealth,
		LastPoints:    g.lastPoints,
		PowerUpActive: g.powerUpActive,

		Letters:   letters,
		Buildings: buildings,
		Particles: particles,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CityHealth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastPoints) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.PowerUpActive)

	for _, l := range snap.Letters {
		h = h*31 + uint64(l.ID)   //#nosec G115 -- hash computation
		h = h*31 + uint64(l.Char) //#nosec G115 -- hash computation
		h = h*31 + uint64(l.Type) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(l.X)
		h = h*31 + math.Float64bits(l.Y)
		h = h*31 + uint64(l.Rotation) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(l.Speed)
	}

	for _, b := range snap.Buildings {
		h = h*31 + uint64(b.ID) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Width)
		h = h*31 + math.Float64bits(b.Height)
		h = h*31 + uint64(b.Health) //#nosec G115 -- hash computation
		h = h*31 + boolBit(b.Destroyed)
	}

	for _, p := range snap.Particles {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
		h = h*31 + uint64(p.Color)
		h = h*31 + math.Float64bits(p.Life)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
