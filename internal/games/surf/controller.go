package surf

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/finsurf/internal/config"
)

// Tick interval bounds.
const (
	MinTickInterval     = 16 * time.Millisecond
	MaxTickInterval     = 50 * time.Millisecond
	DefaultTickInterval = 50 * time.Millisecond
)

// HighScoreStore persists the best score per difficulty.
type HighScoreStore interface {
	// HighScore returns the stored best for difficulty, or 0 if none.
	HighScore(difficulty string) (int, error)
	SetHighScore(difficulty string, score int) error
}

// RunRecorder is implemented by stores that also keep a history of sessions.
type RunRecorder interface {
	RecordRun(run RunRecord) error
}

// RunRecord summarizes a finished session.
type RunRecord struct {
	SessionID  string
	Difficulty string
	Score      int // Persisted (non-negative) score
	Ticks      int
}

// Navigator is told once when a session ends.
type Navigator interface {
	SessionEnded(finalScore int, difficulty string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(finalScore int, difficulty string)

// SessionEnded calls f.
func (f NavigatorFunc) SessionEnded(finalScore int, difficulty string) {
	f(finalScore, difficulty)
}

// ControllerConfig configures a Controller. Only Difficulty is required.
type ControllerConfig struct {
	// Difficulty names the tier; unknown names run as medium.
	Difficulty string

	// Profile overrides the built-in profile for the tier (e.g. from YAML).
	Profile *config.DifficultyProfile

	// Settings defaults to DefaultSettings().
	Settings Settings

	// Width and Height of the playfield. If zero, call SetPlayfield before
	// ticks have any effect.
	Width, Height float64

	// TickInterval is clamped to [MinTickInterval, MaxTickInterval].
	TickInterval time.Duration

	Store     HighScoreStore
	Navigator Navigator
	Random    RandomSource
	Logger    *log.Logger

	// OnTick is called after every tick with the session ID and the new
	// snapshot, from the goroutine running the tick loop.
	OnTick func(sessionID string, s State)

	// SessionID defaults to a random UUID.
	SessionID string
}

// Controller owns one session: its live State, the tick cadence and the
// effects of reaching the terminal state.
type Controller struct {
	cfg      ControllerConfig
	logger   *log.Logger
	rnd      RandomSource
	interval time.Duration

	impulse atomic.Bool

	mu    sync.RWMutex
	state State
	ended bool
}

// NewController creates a controller with a fresh session.
func NewController(cfg ControllerConfig) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}
	logger = logger.With("session", cfg.SessionID)

	d, ok := config.ParseDifficulty(cfg.Difficulty)
	if !ok {
		logger.Warn("unknown difficulty, using default", "requested", cfg.Difficulty, "difficulty", d)
	}
	profile := config.LookupProfile(string(d))
	if cfg.Profile != nil && cfg.Profile.Valid() {
		profile = *cfg.Profile
		profile.Name = d
	}

	if cfg.Settings == (Settings{}) {
		cfg.Settings = DefaultSettings()
	}

	rnd := cfg.Random
	if rnd == nil {
		rnd = NewRandomSource(time.Now().UnixNano())
	}

	c := &Controller{
		cfg:      cfg,
		logger:   logger,
		rnd:      rnd,
		interval: clampInterval(cfg.TickInterval),
		state:    NewState(profile, cfg.Settings),
	}
	c.state = Initialize(c.state, cfg.Width, cfg.Height, rnd)
	return c
}

// clampInterval limits d to the supported tick cadence.
func clampInterval(d time.Duration) time.Duration {
	switch {
	case d <= 0:
		return DefaultTickInterval
	case d < MinTickInterval:
		return MinTickInterval
	case d > MaxTickInterval:
		return MaxTickInterval
	default:
		return d
	}
}

// SessionID returns the session identifier.
func (c *Controller) SessionID() string {
	return c.cfg.SessionID
}

// Difficulty returns the resolved difficulty tier.
func (c *Controller) Difficulty() config.Difficulty {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Profile.Name
}

// Interval returns the effective tick interval.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// SetPlayfield supplies the playfield dimensions. It has no effect once the
// session is initialized.
func (c *Controller) SetPlayfield(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Initialize(c.state, width, height, c.rnd)
}

// Trigger requests a flap on the next tick. Safe for concurrent use; several
// triggers between two ticks count as one.
func (c *Controller) Trigger() {
	c.impulse.Store(true)
}

// Snapshot returns the current state for rendering.
func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Tick consumes the pending impulse, advances the session by one step and
// returns the new snapshot. On the transition to terminal it persists the
// high score and notifies the navigator, exactly once per session.
func (c *Controller) Tick() State {
	impulse := c.impulse.Swap(false)

	c.mu.Lock()
	prev := c.state
	next := Step(prev, impulse, c.rnd)
	c.state = next
	finished := next.Terminal && !c.ended
	if finished {
		c.ended = true
	}
	c.mu.Unlock()

	c.logEvents(prev, next)

	if c.cfg.OnTick != nil {
		c.cfg.OnTick(c.cfg.SessionID, next)
	}
	if finished {
		c.finish(next)
	}
	return next
}

// Run ticks at the configured interval until the session ends or ctx is
// cancelled. It returns nil when the session reached the terminal state and
// ctx.Err() on cancellation. No tick fires after Run returns.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info("session started", "difficulty", c.Difficulty(), "interval", c.interval)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("session cancelled", "tick", c.Snapshot().Tick)
			return ctx.Err()
		case <-ticker.C:
			if s := c.Tick(); s.Terminal {
				return nil
			}
		}
	}
}

// logEvents writes per-tick events at debug level.
func (c *Controller) logEvents(prev, next State) {
	for _, ev := range Events(prev, next) {
		switch ev.Type {
		case EventGameOver:
			c.logger.Info("game over", "score", next.Score, "tick", next.Tick)
		case EventRespawned:
			c.logger.Debug("hazard respawned", "kind", ev.Kind, "tick", next.Tick)
		default:
			c.logger.Debug("collision", "kind", ev.Kind, "delta", ev.Delta,
				"score", next.Score, "lives", next.Lives)
		}
	}
}

// finish performs the terminal effects. Store errors are logged and do not
// stop navigation.
func (c *Controller) finish(s State) {
	final := s.PersistedScore()
	difficulty := string(s.Profile.Name)

	if store := c.cfg.Store; store != nil {
		best, err := store.HighScore(difficulty)
		switch {
		case err != nil:
			// Unknown previous best; leave the stored record alone
			c.logger.Warn("could not read high score", "difficulty", difficulty, "error", err)
		case final > best:
			if err := store.SetHighScore(difficulty, final); err != nil {
				c.logger.Warn("could not save high score", "difficulty", difficulty, "error", err)
			} else {
				c.logger.Info("new high score", "difficulty", difficulty, "score", final, "previous", best)
			}
		}

		if rec, ok := store.(RunRecorder); ok {
			run := RunRecord{
				SessionID:  c.cfg.SessionID,
				Difficulty: difficulty,
				Score:      final,
				Ticks:      s.Tick,
			}
			if err := rec.RecordRun(run); err != nil {
				c.logger.Warn("could not record run", "error", err)
			}
		}
	}

	if c.cfg.Navigator != nil {
		c.cfg.Navigator.SessionEnded(final, difficulty)
	}
}
