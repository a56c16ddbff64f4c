// Package config provides YAML-based game configuration loading and the
// difficulty profiles for Fin Surf.
package config

import (
	"errors"
	"fmt"
)

// SurfConfig contains all tunable parameters of the simulation.
type SurfConfig struct {
	Playfield    PlayfieldConfig          `yaml:"playfield"`
	Hazards      HazardsConfig            `yaml:"hazards"`
	Difficulties map[string]ProfileConfig `yaml:"difficulties"`
}

// PlayfieldConfig defines the virtual playfield the simulation runs in.
// Units are abstract pixels; renderers scale them to their own surface.
type PlayfieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FlierX      float64 `yaml:"flier_x"`
	SpawnJitter float64 `yaml:"spawn_jitter"` // Max extra distance past the right edge on respawn
}

// HazardsConfig holds per-kind hazard parameters.
type HazardsConfig struct {
	RewardMinor HazardConfig `yaml:"reward_minor"`
	RewardMajor HazardConfig `yaml:"reward_major"`
	Penalty     HazardConfig `yaml:"penalty"`
}

// HazardConfig defines a single hazard kind.
type HazardConfig struct {
	Speed  float64 `yaml:"speed"`  // Base leftward speed per tick, before the difficulty multiplier
	Score  int     `yaml:"score"`  // Score delta applied on collision
	Radius float64 `yaml:"radius"` // Draw radius as a fraction of playfield width
}

// ProfileConfig is the YAML form of a DifficultyProfile.
type ProfileConfig struct {
	Gravity         float64 `yaml:"gravity"`
	Impulse         float64 `yaml:"impulse"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// Profile returns the difficulty profile for name. Tiers present in the YAML
// table override the built-in values; unknown names get medium.
func (c SurfConfig) Profile(name string) DifficultyProfile {
	d, _ := ParseDifficulty(name)
	if pc, ok := c.Difficulties[string(d)]; ok {
		p := DifficultyProfile{
			Name:            d,
			Gravity:         pc.Gravity,
			Impulse:         pc.Impulse,
			SpeedMultiplier: pc.SpeedMultiplier,
		}
		if p.Valid() {
			return p
		}
	}
	return builtinProfiles[d]
}

// Validate checks the configuration for values the simulation cannot run with.
func (c SurfConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield size must be positive, got %vx%v",
			c.Playfield.Width, c.Playfield.Height))
	}
	if c.Playfield.SpawnJitter < 0 {
		errs = append(errs, fmt.Errorf("spawn_jitter must not be negative, got %v", c.Playfield.SpawnJitter))
	}
	if c.Playfield.FlierX < 0 || c.Playfield.FlierX >= c.Playfield.Width {
		errs = append(errs, fmt.Errorf("flier_x must be inside the playfield, got %v", c.Playfield.FlierX))
	}

	hazards := map[string]HazardConfig{
		"reward_minor": c.Hazards.RewardMinor,
		"reward_major": c.Hazards.RewardMajor,
		"penalty":      c.Hazards.Penalty,
	}
	for name, h := range hazards {
		if h.Speed <= 0 {
			errs = append(errs, fmt.Errorf("hazard %s: speed must be positive, got %v", name, h.Speed))
		}
	}

	for name, pc := range c.Difficulties {
		d, ok := ParseDifficulty(name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown difficulty %q", name))
			continue
		}
		p := DifficultyProfile{Name: d, Gravity: pc.Gravity, Impulse: pc.Impulse, SpeedMultiplier: pc.SpeedMultiplier}
		if !p.Valid() {
			errs = append(errs, fmt.Errorf("difficulty %s: need gravity > 0, impulse < 0, speed_multiplier > 0", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
