package letterfall

import (
	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
)

// burstColor is the magenta family used for building destruction bursts.
const burstColor = core.ColorBrightMagenta

// resolveImpact maps a landed letter to the building it struck, if any.
// Buildings are scanned left to right and at most one absorbs the hit; a
// letter landing in a gap (or on rubble) is a strict miss with no further
// consequence.
func (g *Game) resolveImpact(l *Letter) {
	for _, b := range g.buildings {
		if b.Destroyed || !b.Spans(l.X) {
			continue
		}

		b.Health--
		b.ShakeUntilTick = g.tick + g.ticksFor(g.cfg.Gameplay.ShakeDurationMs)

		if b.Health <= 0 {
			b.Health = 0
			b.Destroyed = true
			g.spawnBurst(b.X+b.Width/2, g.cfg.Playfield.Height-b.Height/2, burstColor)

			g.cityHealth -= config.CityDamagePerBuilding
			if g.cityHealth < 0 {
				g.cityHealth = 0
			}
		}
		return
	}
}
