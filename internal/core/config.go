package core

// RuntimeConfig contains configuration passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// Tick rate bounds. The simulation is tuned for 20 Hz; faster rates only make
// the playfield scroll faster.
const (
	MinTickRate     = 20
	MaxTickRate     = 60
	DefaultTickRate = 20
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// ClampedTickRate returns the tick rate limited to [MinTickRate, MaxTickRate].
// A zero or negative rate selects DefaultTickRate.
func (c RuntimeConfig) ClampedTickRate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return Clamp(c.TickRate, MinTickRate, MaxTickRate)
}
