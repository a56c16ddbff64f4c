package config

import "strings"

// Difficulty names one of the closed set of difficulty tiers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used for empty or unrecognized names.
const DefaultDifficulty = DifficultyMedium

// DifficultyProfile holds the physics parameters for one difficulty tier.
// Profiles are values and are never mutated after a session starts.
type DifficultyProfile struct {
	Name            Difficulty
	Gravity         float64 // Added to vertical velocity every tick
	Impulse         float64 // Velocity set on a flap, negative is up
	SpeedMultiplier float64 // Scales every hazard's horizontal speed
}

// Valid reports whether the profile satisfies gravity > 0, impulse < 0 and
// speedMultiplier > 0.
func (p DifficultyProfile) Valid() bool {
	return p.Gravity > 0 && p.Impulse < 0 && p.SpeedMultiplier > 0
}

var builtinProfiles = map[Difficulty]DifficultyProfile{
	DifficultyEasy:   {Name: DifficultyEasy, Gravity: 1.2, Impulse: -24, SpeedMultiplier: 0.8},
	DifficultyMedium: {Name: DifficultyMedium, Gravity: 1.5, Impulse: -28, SpeedMultiplier: 1.0},
	DifficultyHard:   {Name: DifficultyHard, Gravity: 1.8, Impulse: -32, SpeedMultiplier: 1.2},
}

// Difficulties returns all tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty normalizes a difficulty name. Unknown names resolve to
// DefaultDifficulty with ok=false so callers can report the fallback.
func ParseDifficulty(name string) (d Difficulty, ok bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(name))) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return DefaultDifficulty, false
	}
}

// LookupProfile returns the built-in profile for a difficulty name.
// It never fails: unknown names get the medium profile.
func LookupProfile(name string) DifficultyProfile {
	d, _ := ParseDifficulty(name)
	return builtinProfiles[d]
}
