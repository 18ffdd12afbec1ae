package letterfall

import "unicode"

// KeyPress feeds one typed character to the input matcher.
// The first live letter in storage order whose character matches wins;
// anything else - wrong key, non-letter, inactive game - is a silent no-op.
// The platform routes keys through Step so they land between ticks.
func (g *Game) KeyPress(r rune) {
	if g.phase != StateActive || g.paused {
		return
	}

	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return
	}

	for i, l := range g.letters {
		if l.Char != r {
			continue
		}
		g.scoreMatch(i, l)
		return
	}
}

// scoreMatch removes the matched letter and applies combo-adjusted points.
func (g *Game) scoreMatch(idx int, l *Letter) {
	// A match inside the combo window extends the streak; otherwise the
	// streak restarts at 1. The very first match of a run always starts
	// at 1.
	window := g.cfg.Gameplay.ComboWindowMs
	if g.hasMatched && float64(g.tick-g.lastMatchTick)*g.msPerTick < window {
		g.combo++
	} else {
		g.combo = 1
	}

	mult := g.combo
	if mult > g.cfg.Gameplay.ComboMaxMultiplier {
		mult = g.cfg.Gameplay.ComboMaxMultiplier
	}
	points := l.Type.Points() * mult

	g.score += points
	g.lastPoints = points
	g.hasMatched = true
	g.lastMatchTick = g.tick
	g.comboExpiresAt = g.tick + g.ticksFor(window)

	g.spawnBurst(l.X, l.Y, l.Type.Color())

	if l.Type == TypePower {
		// No timer: slow motion holds until the next reset.
		g.powerUpActive = true
	}

	g.letters = append(g.letters[:idx], g.letters[idx+1:]...)

	if g.score >= g.cfg.Gameplay.TargetScore {
		g.phase = StateVictory
	}
}

// expireCombo zeroes the streak when the combo window passes with no
// match. Zero means "no active streak"; a streak in progress is >= 1.
func (g *Game) expireCombo() {
	if g.combo > 0 && g.tick >= g.comboExpiresAt {
		g.combo = 0
	}
}
