// Package surf implements the Fin Surf simulation: a flier under gravity and
// flap control, and three hazards that cross the playfield right to left.
//
// The simulation is a pure function over value snapshots. Step never mutates
// its input; the Controller owns the single live State and replaces it
// wholesale on every tick.
package surf

import (
	"github.com/vovakirdan/finsurf/internal/config"
	"github.com/vovakirdan/finsurf/internal/core"
)

// Simulation constants.
const (
	MaxLives     = 3
	HazardCount  = 3
	HitboxRatio  = 0.4 // Hazard hitbox half-width as a fraction of flier width
	flierWidthN  = 8   // Flier width is playfield width / flierWidthN
	flierHeightN = 14  // Flier height is playfield height / flierHeightN
)

// HazardKind identifies one of the three hazard slots.
type HazardKind int

// Kinds in processing order.
const (
	RewardMinor HazardKind = iota
	RewardMajor
	Penalty
)

// String returns the kind's name.
func (k HazardKind) String() string {
	switch k {
	case RewardMinor:
		return "reward-minor"
	case RewardMajor:
		return "reward-major"
	case Penalty:
		return "penalty"
	default:
		return "unknown"
	}
}

// CostsLife reports whether colliding with this kind takes a life.
func (k HazardKind) CostsLife() bool {
	return k == Penalty
}

// Hazard is a horizontally moving entity. X, Y is its centre.
type Hazard struct {
	Kind       HazardKind
	X, Y       float64
	Speed      float64 // Leftward distance per tick, already scaled by the profile
	ScoreDelta int
	Radius     float64 // Draw radius as a fraction of playfield width
}

// Flier is the player-controlled entity. X, Y is its top-left corner.
type Flier struct {
	X, Y          float64
	Velocity      float64 // Positive is down
	Width, Height float64
}

// Rect returns the flier's bounding box.
func (f Flier) Rect() core.RectF {
	return core.RectF{X: f.X, Y: f.Y, W: f.Width, H: f.Height}
}

// Geometry holds playfield-derived dimensions.
type Geometry struct {
	Width, Height   float64
	MinY, MaxY      float64 // Vertical band for the flier's top edge
	HazardHalfWidth float64
	SpawnJitter     float64 // Max extra distance past the right edge on respawn
}

// HazardWidth is the full width of a hazard hitbox.
func (g Geometry) HazardWidth() float64 {
	return 2 * g.HazardHalfWidth
}

// SentinelX is where a hazard is parked after a collision. It is past the
// left edge so the off-screen check respawns it.
func (g Geometry) SentinelX() float64 {
	return -(g.HazardWidth() + g.Width)
}

// RespawnY maps a uniform draw u in [0, 1) to a hazard y-coordinate.
func (g Geometry) RespawnY(u float64) float64 {
	span := g.MaxY - 2*g.MinY
	if span < 0 {
		span = 0
	}
	return g.MinY + u*span
}

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseRunning
	PhaseTerminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseRunning:
		return "running"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Settings are the session-independent parameters taken from SurfConfig.
type Settings struct {
	FlierX      float64
	SpawnJitter float64
	Hazards     config.HazardsConfig
}

// DefaultSettings returns settings from the built-in configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultSurfConfig())
}

// SettingsFromConfig extracts simulation settings from a loaded config.
func SettingsFromConfig(cfg config.SurfConfig) Settings {
	return Settings{
		FlierX:      cfg.Playfield.FlierX,
		SpawnJitter: cfg.Playfield.SpawnJitter,
		Hazards:     cfg.Hazards,
	}
}

// State is a complete snapshot of one session.
type State struct {
	Profile     config.DifficultyProfile
	Geometry    Geometry
	Flier       Flier
	Hazards     [HazardCount]Hazard
	Score       int // May go negative; clamped only when persisted
	Lives       int
	Terminal    bool
	Initialized bool

	Flapping bool              // Impulse was applied on the last tick
	LastHits [HazardCount]bool // Hazards that collided on the last tick
	Tick     int               // Number of steps applied
}

// NewState returns an uninitialized session for the given profile.
func NewState(profile config.DifficultyProfile, settings Settings) State {
	s := State{
		Profile: profile,
		Lives:   MaxLives,
		Flier:   Flier{X: settings.FlierX},
		Geometry: Geometry{
			SpawnJitter: settings.SpawnJitter,
		},
	}

	kinds := [HazardCount]config.HazardConfig{
		RewardMinor: settings.Hazards.RewardMinor,
		RewardMajor: settings.Hazards.RewardMajor,
		Penalty:     settings.Hazards.Penalty,
	}
	for i, hc := range kinds {
		s.Hazards[i] = Hazard{
			Kind:       HazardKind(i),
			Speed:      hc.Speed * profile.SpeedMultiplier,
			ScoreDelta: hc.Score,
			Radius:     hc.Radius,
		}
	}
	return s
}

// Initialize sizes the playfield and places every entity. It returns s
// unchanged if s is already initialized or the dimensions are not positive.
func Initialize(s State, width, height float64, rnd RandomSource) State {
	if s.Initialized || width <= 0 || height <= 0 {
		return s
	}

	fw := width / flierWidthN
	fh := height / flierHeightN
	g := Geometry{
		Width:           width,
		Height:          height,
		MinY:            fh,
		MaxY:            height - 3*fh,
		HazardHalfWidth: HitboxRatio * fw,
		SpawnJitter:     s.Geometry.SpawnJitter,
	}

	s.Geometry = g
	s.Flier.Width = fw
	s.Flier.Height = fh
	s.Flier.Y = (g.MinY + g.MaxY) / 2
	s.Flier.Velocity = 0

	for i := range s.Hazards {
		s.Hazards[i].X = width + g.SpawnJitter
		s.Hazards[i].Y = g.RespawnY(rnd.Float64())
	}

	s.Initialized = true
	return s
}

// Phase reports the lifecycle stage of s.
func (s State) Phase() Phase {
	switch {
	case s.Terminal:
		return PhaseTerminal
	case s.Initialized:
		return PhaseRunning
	default:
		return PhaseUninitialized
	}
}

// PersistedScore is the score used for high-score comparison: never negative.
func (s State) PersistedScore() int {
	if s.Score < 0 {
		return 0
	}
	return s.Score
}
