package config

import (
	_ "embed"
)

//go:embed defaults/finsurf.yaml
var defaultSurfYAML []byte

// DefaultSurfConfig returns the hardcoded default configuration.
// It matches defaults/finsurf.yaml and is used if the embedded file cannot be parsed.
func DefaultSurfConfig() SurfConfig {
	return SurfConfig{
		Playfield: PlayfieldConfig{
			Width:       1920,
			Height:      1080,
			FlierX:      10,
			SpawnJitter: 21,
		},
		Hazards: HazardsConfig{
			RewardMinor: HazardConfig{Speed: 16, Score: 10, Radius: 0.03},
			RewardMajor: HazardConfig{Speed: 26, Score: 25, Radius: 0.04},
			Penalty:     HazardConfig{Speed: 20, Score: -20, Radius: 0.045},
		},
		Difficulties: map[string]ProfileConfig{
			"easy":   {Gravity: 1.2, Impulse: -24, SpeedMultiplier: 0.8},
			"medium": {Gravity: 1.5, Impulse: -28, SpeedMultiplier: 1.0},
			"hard":   {Gravity: 1.8, Impulse: -32, SpeedMultiplier: 1.2},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSurfYAML
}
