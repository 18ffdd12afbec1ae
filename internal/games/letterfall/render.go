package letterfall

import (
	"fmt"

	"github.com/vovakirdan/letterfall/internal/core"
)

const hudRows = 2

// Render draws the current game state to the screen.
// The simulation runs in its own pixel space; rendering scales positions
// into whatever terminal size the platform provides.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	screenW := dst.Width()
	screenH := dst.Height()
	gameH := screenH - hudRows
	if screenW < 20 || gameH < 8 {
		g.renderTooSmall(dst)
		return
	}

	sx := float64(screenW) / g.cfg.Playfield.Width
	sy := float64(gameH) / g.cfg.Playfield.Height

	g.renderHUD(dst, screenW)
	g.renderGround(dst, screenW, gameH, sy)
	g.renderBuildings(dst, gameH, sx, sy)
	g.renderParticles(dst, sx, sy)
	g.renderLetters(dst, sx, sy)
	g.renderOverlays(dst, screenW, screenH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
}

// renderHUD draws the score line and the status line.
func (g *Game) renderHUD(dst *core.Screen, screenW int) {
	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(0, 0, scoreStr, core.ColorBrightWhite)

	high := g.highScore
	if g.score > high {
		high = g.score
	}
	highStr := fmt.Sprintf("High: %d", high)
	dst.DrawText(screenW-len(highStr), 0, highStr)

	levelStr := fmt.Sprintf("Level %d", g.level)
	dst.DrawText((screenW-len(levelStr))/2, 0, levelStr)

	cityStr := fmt.Sprintf("City: %d%%", g.cityHealth)
	cityColor := core.ColorBrightGreen
	switch {
	case g.cityHealth <= 30:
		cityColor = core.ColorBrightRed
	case g.cityHealth <= 60:
		cityColor = core.ColorBrightYellow
	}
	dst.DrawTextColored(0, 1, cityStr, cityColor)

	if g.combo > 1 {
		comboStr := fmt.Sprintf("Combo x%d", g.combo)
		dst.DrawTextColored((screenW-len(comboStr))/2, 1, comboStr, core.ColorBrightYellow)
	}

	if g.powerUpActive {
		slowStr := "SLOW-MO"
		dst.DrawTextColored(screenW-len(slowStr), 1, slowStr, core.ColorBrightCyan)
	}
}

// renderGround draws the impact line separating sky from skyline.
func (g *Game) renderGround(dst *core.Screen, screenW, gameH int, sy float64) {
	impactY := g.cfg.Playfield.Height - g.cfg.Playfield.ImpactMargin
	row := hudRows + int(impactY*sy)
	if row >= hudRows+gameH {
		row = hudRows + gameH - 1
	}
	dst.DrawHLine(0, row, screenW, '─')
}

// renderBuildings draws the skyline as solid columns rising from the
// bottom of the playfield. A shaking building flashes red; rubble shows
// as a dim remnant row.
func (g *Game) renderBuildings(dst *core.Screen, gameH int, sx, sy float64) {
	bottom := hudRows + gameH - 1
	for _, b := range g.buildings {
		x0 := int(b.X * sx)
		x1 := int((b.X + b.Width) * sx)
		if x1 <= x0 {
			x1 = x0 + 1
		}

		if b.Destroyed {
			for x := x0; x < x1; x++ {
				dst.SetCell(x, bottom, '▂', core.ColorGray)
			}
			continue
		}

		rows := int(b.Height * sy)
		if rows < 1 {
			rows = 1
		}
		color := core.ColorGray
		if b.Shaking(g.tick) {
			color = core.ColorBrightRed
		}
		for x := x0; x < x1; x++ {
			for dy := 0; dy < rows; dy++ {
				dst.SetCell(x, bottom-dy, '█', color)
			}
		}
	}
}

// renderLetters draws each falling letter as its colored character.
func (g *Game) renderLetters(dst *core.Screen, sx, sy float64) {
	for _, l := range g.letters {
		x := int(l.X * sx)
		y := hudRows + int(l.Y*sy)
		dst.SetCell(x, y, l.Char, l.Type.Color())
	}
}

// renderParticles draws explosion fragments, fading with remaining life.
func (g *Game) renderParticles(dst *core.Screen, sx, sy float64) {
	for _, p := range g.particles {
		x := int(p.X * sx)
		y := hudRows + int(p.Y*sy)
		r := '·'
		if p.Life > 0.5 {
			r = '*'
		}
		dst.SetCell(x, y, r, p.Color)
	}
}

// renderOverlays draws phase overlays on top of the playfield.
func (g *Game) renderOverlays(dst *core.Screen, screenW, screenH int) {
	centerX := screenW / 2
	centerY := screenH / 2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press Esc to resume")
	case g.phase == StateNotStarted:
		g.drawOverlay(dst, centerX, centerY, "LETTERFALL", "Type the falling letters!", "Press Enter to start")
		dst.DrawTextCentered(screenH-1, g.Controls())
	case g.phase == StateVictory:
		scoreStr := fmt.Sprintf("Final score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "CITY SAVED!", scoreStr, "Press Enter to play again")
	case g.phase == StateGameOver:
		scoreStr := fmt.Sprintf("Final score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "CITY DESTROYED", scoreStr, "Press Enter to play again")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	box := core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "A-Z: Shoot letters | Esc: Pause | Enter: Start/Restart | Ctrl+C: Quit"
}
