package letterfall

import "testing"

func addLetter(g *Game, char rune, lt LetterType) *Letter {
	l := &Letter{
		ID:    g.nextEntityID,
		Char:  char,
		Type:  lt,
		X:     100,
		Y:     50,
		Scale: 1,
		Speed: 1,
	}
	g.nextEntityID++
	g.letters = append(g.letters, l)
	return l
}

func TestMatchScoresByType(t *testing.T) {
	cases := []struct {
		lt     LetterType
		points int
	}{
		{TypeNormal, 100},
		{TypeFast, 200},
		{TypeBonus, 300},
		{TypePower, 150},
	}

	for _, tc := range cases {
		g := newActiveGame(t)
		addLetter(g, 'A', tc.lt)

		g.KeyPress('A')

		if g.score != tc.points {
			t.Errorf("%v: expected score %d, got %d", tc.lt, tc.points, g.score)
		}
		if g.lastPoints != tc.points {
			t.Errorf("%v: expected lastPoints %d, got %d", tc.lt, tc.points, g.lastPoints)
		}
		if len(g.letters) != 0 {
			t.Errorf("%v: matched letter should be removed", tc.lt)
		}
		if len(g.particles) != g.cfg.Particles.BurstSize {
			t.Errorf("%v: match should burst %d particles, got %d", tc.lt, g.cfg.Particles.BurstSize, len(g.particles))
		}
	}
}

func TestCaseInsensitiveMatch(t *testing.T) {
	g := newActiveGame(t)
	addLetter(g, 'A', TypeNormal)

	g.KeyPress('a')

	if g.score != 100 {
		t.Errorf("Lowercase key should match uppercase letter, score %d", g.score)
	}
}

func TestWrongKeyIsNoOp(t *testing.T) {
	g := newActiveGame(t)
	addLetter(g, 'A', TypeNormal)

	g.KeyPress('B')
	g.KeyPress('3')
	g.KeyPress(' ')

	if g.score != 0 {
		t.Errorf("Non-matching keys should not score, got %d", g.score)
	}
	if len(g.letters) != 1 {
		t.Errorf("Letter should survive non-matching keys, %d remain", len(g.letters))
	}
	if g.combo != 0 {
		t.Errorf("Combo should be untouched, got %d", g.combo)
	}
}

func TestKeyPressIgnoredOutsideActivePlay(t *testing.T) {
	g := newTestGame(t)
	addLetter(g, 'A', TypeNormal)

	g.KeyPress('A') // not started yet
	if g.score != 0 {
		t.Errorf("Key before start should not score, got %d", g.score)
	}

	g.phase = StateActive
	g.paused = true
	g.KeyPress('A')
	if g.score != 0 {
		t.Errorf("Key while paused should not score, got %d", g.score)
	}
}

func TestFirstMatchingLetterWins(t *testing.T) {
	g := newActiveGame(t)
	first := addLetter(g, 'A', TypeNormal)
	addLetter(g, 'A', TypeBonus)

	g.KeyPress('A')

	if g.score != 100 {
		t.Errorf("First letter in order should win, score %d", g.score)
	}
	if len(g.letters) != 1 || g.letters[0].ID == first.ID {
		t.Error("Exactly the first matching letter should be removed")
	}
}

func TestComboWithinWindow(t *testing.T) {
	g := newActiveGame(t)

	addLetter(g, 'A', TypeNormal)
	g.KeyPress('A')
	if g.combo != 1 {
		t.Fatalf("First match should start combo at 1, got %d", g.combo)
	}
	if g.score != 100 {
		t.Fatalf("Expected score 100, got %d", g.score)
	}

	g.tick += 30 // 500ms at 60 ticks/s, inside the 1000ms window
	addLetter(g, 'B', TypeNormal)
	g.KeyPress('B')
	if g.combo != 2 {
		t.Errorf("Second match in window should reach combo 2, got %d", g.combo)
	}
	if g.score != 300 {
		t.Errorf("Expected 100 + 100*2 = 300, got %d", g.score)
	}
}

func TestComboRestartsOutsideWindow(t *testing.T) {
	g := newActiveGame(t)

	addLetter(g, 'A', TypeNormal)
	g.KeyPress('A')

	g.tick += 65 // past the 1000ms window
	addLetter(g, 'B', TypeNormal)
	g.KeyPress('B')

	if g.combo != 1 {
		t.Errorf("Match after the window should restart combo at 1, got %d", g.combo)
	}
	if g.score != 200 {
		t.Errorf("Expected 100 + 100, got %d", g.score)
	}
}

func TestComboExpiresByDeadline(t *testing.T) {
	g := newActiveGame(t)

	addLetter(g, 'A', TypeNormal)
	g.KeyPress('A')
	if g.combo != 1 {
		t.Fatalf("Expected combo 1, got %d", g.combo)
	}

	g.tick = g.comboExpiresAt - 1
	g.expireCombo()
	if g.combo != 1 {
		t.Errorf("Combo should survive until the deadline, got %d", g.combo)
	}

	g.tick = g.comboExpiresAt
	g.expireCombo()
	if g.combo != 0 {
		t.Errorf("Combo should expire at the deadline, got %d", g.combo)
	}
}

func TestComboMultiplierCapped(t *testing.T) {
	g := newActiveGame(t)
	g.hasMatched = true
	g.lastMatchTick = g.tick
	g.combo = 14

	addLetter(g, 'A', TypeNormal)
	g.KeyPress('A')

	if g.combo != 15 {
		t.Errorf("Combo count keeps growing past the cap, got %d", g.combo)
	}
	if g.score != 100*g.cfg.Gameplay.ComboMaxMultiplier {
		t.Errorf("Multiplier should cap at %d, score %d", g.cfg.Gameplay.ComboMaxMultiplier, g.score)
	}
}

func TestPowerUpStickyUntilReset(t *testing.T) {
	g := newActiveGame(t)

	addLetter(g, 'P', TypePower)
	g.KeyPress('P')
	if !g.powerUpActive {
		t.Fatal("Power letter should activate slow motion")
	}

	g.tick += 600 // well past any window
	addLetter(g, 'A', TypeNormal)
	g.KeyPress('A')
	if !g.powerUpActive {
		t.Error("Power-up should persist across later matches")
	}

	g.ResetRun()
	if g.powerUpActive {
		t.Error("Power-up should clear on run reset")
	}
}

func TestMatchExtendsComboDeadline(t *testing.T) {
	g := newActiveGame(t)

	addLetter(g, 'A', TypeNormal)
	g.KeyPress('A')
	firstDeadline := g.comboExpiresAt

	g.tick += 30
	addLetter(g, 'B', TypeNormal)
	g.KeyPress('B')

	if g.comboExpiresAt <= firstDeadline {
		t.Errorf("New match should push the deadline: %d -> %d", firstDeadline, g.comboExpiresAt)
	}
}
