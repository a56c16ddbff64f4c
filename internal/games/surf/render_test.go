package surf

import (
	"strings"
	"testing"

	"github.com/vovakirdan/finsurf/internal/core"
)

func TestRenderHUD(t *testing.T) {
	s := newRunning(t, "hard")
	s.Score = 35
	s.Lives = 2
	screen := core.NewScreen(40, 20)

	Render(s, screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 35") {
		t.Errorf("HUD %q should show the score", hud)
	}
	if !strings.Contains(hud, "HARD") {
		t.Errorf("HUD %q should show the difficulty", hud)
	}

	var full, empty int
	for x := 0; x < screen.Width(); x++ {
		c := screen.GetCell(x, 0)
		if c.Rune != HeartChar {
			continue
		}
		if c.Color == core.ColorBrightRed {
			full++
		} else {
			empty++
		}
	}
	if full != 2 || empty != 1 {
		t.Errorf("hearts = %d full, %d empty; expected 2 and 1", full, empty)
	}
}

func TestRenderUninitializedDrawsOnlyHUD(t *testing.T) {
	s := NewState(newRunning(t, "medium").Profile, DefaultSettings())
	screen := core.NewScreen(40, 20)

	Render(s, screen)

	for y := 1; y < screen.Height(); y++ {
		if strings.TrimSpace(screen.Row(y)) != "" {
			t.Fatalf("row %d = %q, expected blank", y, screen.Row(y))
		}
	}
}

func TestRenderEntities(t *testing.T) {
	s := newRunning(t, "medium")
	// 40 columns by 19 playfield rows: 27 units per column, ~101 per row
	s.Hazards[RewardMinor].X, s.Hazards[RewardMinor].Y = 550, 300
	s.Hazards[RewardMajor].X, s.Hazards[RewardMajor].Y = 820, 300
	s.Hazards[Penalty].X, s.Hazards[Penalty].Y = 550, 1200
	screen := core.NewScreen(40, 20)

	Render(s, screen)

	checks := []struct {
		x, y  int
		glyph rune
		color core.Color
	}{
		{20, 3, '•', core.ColorYellow},
		{30, 3, '●', core.ColorGreen},
		{20, 12, '✹', core.ColorRed},
	}
	for _, c := range checks {
		got := screen.GetCell(c.x, c.y)
		if got.Rune != c.glyph || got.Color != c.color {
			t.Errorf("cell (%d, %d) = %q/%v, expected %q/%v", c.x, c.y, got.Rune, got.Color, c.glyph, c.color)
		}
	}

	// Flier occupies columns 0..4 with its head on the right
	row := 1 + int(s.Flier.Y*19/1920)
	if got := screen.GetCell(4, row); got.Rune != FlierChar || got.Color != core.ColorCyan {
		t.Errorf("flier head = %q/%v, expected %q cyan", got.Rune, got.Color, FlierChar)
	}
	if got := screen.GetCell(0, row).Rune; got != FlierBodyChar {
		t.Errorf("flier body = %q, expected %q", got, FlierBodyChar)
	}

	s.Flapping = true
	Render(s, screen)
	if got := screen.GetCell(4, row).Rune; got != FlierFlapChar {
		t.Errorf("flapping head = %q, expected %q", got, FlierFlapChar)
	}
}

func TestRenderWaterLine(t *testing.T) {
	s := newRunning(t, "easy")
	screen := core.NewScreen(30, 15)

	Render(s, screen)

	found := false
	for y := 1; y < screen.Height(); y++ {
		if strings.Count(screen.Row(y), string(WaterChar)) == screen.Width() {
			found = true
		}
	}
	if !found {
		t.Error("expected a full-width water line")
	}
}
