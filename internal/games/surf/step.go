package surf

// Step advances s by one tick and returns the new snapshot; s is not modified.
//
// Terminal and uninitialized states are returned unchanged. Otherwise the
// flier moves first, then each hazard in kind order is tested for collision at
// its position from the previous tick and advanced. A collision applies the
// kind's score delta, takes a life for the penalty kind, and parks the hazard
// past the left edge so it respawns in the same tick.
//
// rnd is consumed only on respawn: one draw for x, then one for y.
func Step(s State, impulse bool, rnd RandomSource) State {
	if s.Terminal || !s.Initialized {
		return s
	}

	next := s
	g := s.Geometry

	// Impulse replaces gravity for this tick
	v := s.Flier.Velocity + s.Profile.Gravity
	if impulse {
		v = s.Profile.Impulse
	}

	y := s.Flier.Y + v
	switch {
	case y < g.MinY:
		y, v = g.MinY, 0
	case y > g.MaxY:
		y, v = g.MaxY, 0
	}
	next.Flier.Y = y
	next.Flier.Velocity = v
	next.Flapping = impulse
	next.LastHits = [HazardCount]bool{}

	for i := range next.Hazards {
		h := &next.Hazards[i]

		hit := Overlaps(next.Flier, *h)
		h.X -= h.Speed

		if hit {
			next.LastHits[i] = true
			next.Score += h.ScoreDelta
			if h.Kind.CostsLife() && next.Lives > 0 {
				next.Lives--
			}
			h.X = g.SentinelX()
		}

		if h.X < -g.HazardWidth() {
			h.X = g.Width + rnd.Float64()*g.SpawnJitter
			h.Y = g.RespawnY(rnd.Float64())
		}
	}

	if next.Lives == 0 {
		next.Terminal = true
	}
	next.Tick++
	return next
}
