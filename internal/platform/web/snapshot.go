package web

import "github.com/vovakirdan/finsurf/internal/games/surf"

// Snapshot is the JSON form of a simulation state sent to spectators.
type Snapshot struct {
	Session    string           `json:"session"`
	Difficulty string           `json:"difficulty"`
	Tick       int              `json:"tick"`
	Score      int              `json:"score"`
	Lives      int              `json:"lives"`
	Terminal   bool             `json:"terminal"`
	Width      float64          `json:"width"`
	Height     float64          `json:"height"`
	Flier      FlierSnapshot    `json:"flier"`
	Hazards    []HazardSnapshot `json:"hazards"`
}

// FlierSnapshot is the flier's position and motion.
type FlierSnapshot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Velocity float64 `json:"velocity"`
	Flapping bool    `json:"flapping"`
}

// HazardSnapshot is one hazard's position.
type HazardSnapshot struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Hit    bool    `json:"hit"`
}

// NewSnapshot converts a state for the wire.
func NewSnapshot(session string, s surf.State) Snapshot {
	snap := Snapshot{
		Session:    session,
		Difficulty: string(s.Profile.Name),
		Tick:       s.Tick,
		Score:      s.Score,
		Lives:      s.Lives,
		Terminal:   s.Terminal,
		Width:      s.Geometry.Width,
		Height:     s.Geometry.Height,
		Flier: FlierSnapshot{
			X:        s.Flier.X,
			Y:        s.Flier.Y,
			Width:    s.Flier.Width,
			Height:   s.Flier.Height,
			Velocity: s.Flier.Velocity,
			Flapping: s.Flapping,
		},
		Hazards: make([]HazardSnapshot, 0, len(s.Hazards)),
	}
	for i, h := range s.Hazards {
		snap.Hazards = append(snap.Hazards, HazardSnapshot{
			Kind:   h.Kind.String(),
			X:      h.X,
			Y:      h.Y,
			Radius: h.Radius,
			Hit:    s.LastHits[i],
		})
	}
	return snap
}
