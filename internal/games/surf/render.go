package surf

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/finsurf/internal/core"
)

// Visual characters for rendering
const (
	FlierChar     = '▶'
	FlierFlapChar = '▲'
	FlierBodyChar = '█'
	WaterChar     = '~'
	HeartChar     = '♥'
)

var hazardStyle = [HazardCount]struct {
	glyph rune
	color core.Color
}{
	RewardMinor: {'•', core.ColorYellow},
	RewardMajor: {'●', core.ColorGreen},
	Penalty:     {'✹', core.ColorRed},
}

// Render draws s onto dst. Row 0 is the HUD; the playfield is scaled to the
// remaining rows. Uninitialized states draw only the HUD.
func Render(s State, dst *core.Screen) {
	dst.Clear()
	drawHUD(s, dst)

	if !s.Initialized || dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	v := newViewport(s.Geometry, dst.Width(), dst.Height()-1, 1)

	// Water line at the bottom of the band
	dst.DrawHLine(0, v.row(s.Geometry.MaxY+s.Flier.Height), dst.Width(), WaterChar, core.ColorBlue)

	for _, h := range s.Hazards {
		st := hazardStyle[h.Kind]
		dst.SetColored(v.col(h.X), v.row(h.Y), st.glyph, st.color)
	}

	drawFlier(s, v, dst)
}

// drawFlier draws the flier as a filled block with a head glyph on the right.
func drawFlier(s State, v viewport, dst *core.Screen) {
	f := s.Flier
	x0, y0 := v.col(f.X), v.row(f.Y)
	w := max(1, v.col(f.X+f.Width)-x0)
	h := max(1, v.row(f.Y+f.Height)-y0)

	head := FlierChar
	if s.Flapping {
		head = FlierFlapChar
	}

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r := FlierBodyChar
			if dx == w-1 && dy == 0 {
				r = head
			}
			dst.SetColored(x0+dx, y0+dy, r, core.ColorCyan)
		}
	}
}

// drawHUD draws score, difficulty and remaining lives on row 0.
func drawHUD(s State, dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))

	label := strings.ToUpper(string(s.Profile.Name))
	dst.DrawTextCentered(0, label)

	x := dst.Width() - MaxLives - 1
	for i := 0; i < MaxLives; i++ {
		color := core.ColorGray
		if i < s.Lives {
			color = core.ColorBrightRed
		}
		dst.SetColored(x+i, 0, HeartChar, color)
	}
}

// viewport maps playfield coordinates to screen cells.
type viewport struct {
	sx, sy  float64
	offsetY int
	h       int
}

func newViewport(g Geometry, cols, rows, offsetY int) viewport {
	return viewport{
		sx:      float64(cols) / g.Width,
		sy:      float64(rows) / g.Height,
		offsetY: offsetY,
		h:       rows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return core.Clamp(int(math.Floor(y*v.sy)), 0, v.h-1) + v.offsetY
}
