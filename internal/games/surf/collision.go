package surf

import "github.com/vovakirdan/finsurf/internal/core"

// Overlaps reports whether the flier's box intersects the hazard's hitbox, a
// square of half-width HitboxRatio × flier width centred on the hazard.
// Edge contact is not a collision.
func Overlaps(f Flier, h Hazard) bool {
	return f.Rect().Intersects(core.SquareAt(h.X, h.Y, HitboxRatio*f.Width))
}
