package letterfall

import (
	"math"

	"github.com/vovakirdan/letterfall/internal/core"
)

// updateLetters advances every letter by one tick and hands letters that
// reached the impact line to the collision resolver. Reaching the impact
// line is the only way an unmatched letter leaves the playfield.
func (g *Game) updateLetters() {
	speedMult := 1.0
	if g.powerUpActive {
		speedMult = 0.5
	}
	impactY := g.cfg.Playfield.Height - g.cfg.Playfield.ImpactMargin
	pulse := 1 + 0.1*math.Sin(g.elapsedMs()/200)

	var impacting []*Letter
	kept := g.letters[:0]
	for _, l := range g.letters {
		l.Y += l.Speed * speedMult
		l.Rotation = (l.Rotation + 1) % 360
		l.Scale = pulse

		if l.Y >= impactY {
			impacting = append(impacting, l)
		} else {
			kept = append(kept, l)
		}
	}
	g.letters = kept

	for _, l := range impacting {
		g.resolveImpact(l)
	}
}

// updateParticles integrates particle motion and drops dead particles.
// Runs every tick regardless of phase so bursts finish fading after a
// game-over screen appears.
func (g *Game) updateParticles() {
	drag := g.cfg.Particles.Drag
	gravity := g.cfg.Particles.Gravity
	decay := g.cfg.Particles.LifeDecay

	alive := g.particles[:0]
	for _, p := range g.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= drag
		p.VY = p.VY*drag + gravity
		p.Life -= decay

		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	g.particles = alive
}

// spawnBurst creates one explosion burst at (x, y).
// Fragments fan out sideways with an upward bias and fall under gravity.
// After appending, the oldest particles beyond the cap are discarded to
// bound per-tick work.
func (g *Game) spawnBurst(x, y float64, color core.Color) {
	for i := 0; i < g.cfg.Particles.BurstSize; i++ {
		id := g.nextEntityID
		g.nextEntityID++

		g.particles = append(g.particles, &Particle{
			ID:    id,
			X:     x,
			Y:     y,
			VX:    g.rng.Float64()*8 - 4, // [-4, 4]
			VY:    -g.rng.Float64() * 4,  // [-4, 0], biased upward
			Color: color,
			Life:  1,
			Size:  4 + g.rng.Float64()*4, // [4, 8]
		})
	}

	if excess := len(g.particles) - g.cfg.Particles.Max; excess > 0 {
		g.particles = append(g.particles[:0], g.particles[excess:]...)
	}
}
