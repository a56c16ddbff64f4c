package surf

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/finsurf/internal/config"
)

type fakeStore struct {
	mu      sync.Mutex
	best    map[string]int
	readErr error
	reads   int
	writes  []int
	runs    []RunRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{best: make(map[string]int)}
}

func (f *fakeStore) HighScore(difficulty string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.best[difficulty], nil
}

func (f *fakeStore) SetHighScore(difficulty string, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, score)
	f.best[difficulty] = score
	return nil
}

func (f *fakeStore) RecordRun(run RunRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, run)
	return nil
}

type navCall struct {
	score      int
	difficulty string
}

type fakeNavigator struct {
	mu    sync.Mutex
	calls []navCall
}

func (n *fakeNavigator) SessionEnded(finalScore int, difficulty string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, navCall{finalScore, difficulty})
}

func (n *fakeNavigator) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func newTestController(difficulty string, store HighScoreStore, nav Navigator) *Controller {
	return NewController(ControllerConfig{
		Difficulty:   difficulty,
		Width:        testW,
		Height:       testH,
		TickInterval: MinTickInterval,
		Store:        store,
		Navigator:    nav,
		Random:       NewFixedSource(0.5),
		SessionID:    "test-session",
	})
}

// rigFatalHit arranges for the next tick to take the last life with the
// given score already on the board.
func rigFatalHit(c *Controller, score int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := hover(parkHazards(c.state))
	s.Lives = 1
	s.Score = score
	s.Hazards[Penalty].X = s.Flier.X + 5
	s.Hazards[Penalty].Y = s.Flier.Y + 5
	c.state = s
}

func TestControllerTerminalEffects(t *testing.T) {
	tests := []struct {
		name        string
		stored      int
		score       int
		expectWrite []int
		expectFinal int
	}{
		{"new best", 50, 120, []int{100}, 100},
		{"below best", 200, 120, nil, 100},
		{"equal to best", 100, 120, nil, 100},
		{"negative score", 0, 5, nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.best["hard"] = tc.stored
			nav := &fakeNavigator{}
			c := newTestController("hard", store, nav)
			rigFatalHit(c, tc.score)

			s := c.Tick()
			if !s.Terminal {
				t.Fatal("session should be terminal after the fatal hit")
			}
			for i := 0; i < 5; i++ {
				c.Tick()
			}

			if store.reads != 1 {
				t.Errorf("high score read %d times, expected 1", store.reads)
			}
			if len(store.writes) != len(tc.expectWrite) {
				t.Fatalf("writes = %v, expected %v", store.writes, tc.expectWrite)
			}
			for i := range tc.expectWrite {
				if store.writes[i] != tc.expectWrite[i] {
					t.Errorf("write %d = %d, expected %d", i, store.writes[i], tc.expectWrite[i])
				}
			}
			if len(nav.calls) != 1 {
				t.Fatalf("navigator called %d times, expected 1", len(nav.calls))
			}
			if nav.calls[0] != (navCall{tc.expectFinal, "hard"}) {
				t.Errorf("navigator got %+v, expected {%d hard}", nav.calls[0], tc.expectFinal)
			}
			if len(store.runs) != 1 || store.runs[0].Score != tc.expectFinal || store.runs[0].SessionID != "test-session" {
				t.Errorf("runs = %+v", store.runs)
			}
		})
	}
}

func TestControllerStoreReadErrorSkipsWrite(t *testing.T) {
	store := newFakeStore()
	store.readErr = errors.New("disk on fire")
	nav := &fakeNavigator{}
	c := newTestController("medium", store, nav)
	rigFatalHit(c, 500)

	c.Tick()

	if len(store.writes) != 0 {
		t.Errorf("writes = %v, expected none after a failed read", store.writes)
	}
	if len(store.runs) != 1 || store.runs[0].Score != 480 {
		t.Errorf("runs = %+v, expected the run recorded despite the read error", store.runs)
	}
	if nav.count() != 1 || nav.calls[0].score != 480 {
		t.Errorf("navigator calls = %+v, expected one with score 480", nav.calls)
	}
}

func TestControllerWithoutCollaborators(t *testing.T) {
	c := newTestController("medium", nil, nil)
	rigFatalHit(c, 0)

	if s := c.Tick(); !s.Terminal {
		t.Error("session should end without store or navigator")
	}
}

func TestControllerUnknownDifficulty(t *testing.T) {
	nav := &fakeNavigator{}
	c := newTestController("Unknown-XYZ", nil, nav)

	if c.Difficulty() != config.DifficultyMedium {
		t.Errorf("difficulty = %q, expected medium", c.Difficulty())
	}
	s := c.Snapshot()
	if s.Profile != config.LookupProfile("medium") {
		t.Errorf("profile = %+v, expected medium", s.Profile)
	}

	rigFatalHit(c, 0)
	c.Tick()
	if nav.calls[0].difficulty != "medium" {
		t.Errorf("navigator difficulty = %q, expected medium", nav.calls[0].difficulty)
	}
}

func TestControllerProfileOverride(t *testing.T) {
	override := config.DifficultyProfile{Gravity: 2, Impulse: -40, SpeedMultiplier: 2}
	c := NewController(ControllerConfig{
		Difficulty: "easy",
		Profile:    &override,
		Width:      testW,
		Height:     testH,
		Random:     NewFixedSource(0.5),
	})

	s := c.Snapshot()
	if s.Profile.Name != config.DifficultyEasy || s.Profile.Gravity != 2 {
		t.Errorf("profile = %+v, expected the override named easy", s.Profile)
	}
	if s.Hazards[RewardMinor].Speed != 32 {
		t.Errorf("speed = %v, expected 32", s.Hazards[RewardMinor].Speed)
	}

	bad := config.DifficultyProfile{Gravity: -1, Impulse: 5, SpeedMultiplier: 1}
	c = NewController(ControllerConfig{Difficulty: "easy", Profile: &bad})
	if c.Snapshot().Profile != config.LookupProfile("easy") {
		t.Error("an invalid override should be ignored")
	}
}

func TestControllerTriggerIsOneShot(t *testing.T) {
	c := newTestController("medium", nil, nil)
	c.mu.Lock()
	c.state = parkHazards(c.state)
	c.mu.Unlock()

	c.Trigger()
	c.Trigger()
	s := c.Tick()
	if !s.Flapping || s.Flier.Velocity != -28 {
		t.Errorf("first tick after trigger: flapping=%v velocity=%v", s.Flapping, s.Flier.Velocity)
	}

	s = c.Tick()
	if s.Flapping {
		t.Error("impulse should be consumed by a single tick")
	}
	if s.Flier.Velocity != -28+1.5 {
		t.Errorf("velocity = %v, expected gravity to resume", s.Flier.Velocity)
	}
}

func TestControllerUninitializedUntilPlayfield(t *testing.T) {
	c := NewController(ControllerConfig{Difficulty: "easy", Random: NewFixedSource(0.5)})

	if s := c.Tick(); s.Tick != 0 || s.Initialized {
		t.Errorf("tick before playfield size should be a no-op: %+v", s)
	}

	c.SetPlayfield(800, 600)
	s := c.Snapshot()
	if !s.Initialized || s.Geometry.Width != 800 {
		t.Fatalf("SetPlayfield did not initialize: %+v", s.Geometry)
	}

	c.SetPlayfield(100, 100)
	if c.Snapshot().Geometry.Width != 800 {
		t.Error("SetPlayfield after initialization should be ignored")
	}

	if s := c.Tick(); s.Tick != 1 {
		t.Errorf("tick = %d, expected 1", s.Tick)
	}
}

func TestControllerOnTick(t *testing.T) {
	var seen []int
	c := NewController(ControllerConfig{
		Width:  testW,
		Height: testH,
		Random: NewFixedSource(0.5),
		OnTick: func(_ string, s State) { seen = append(seen, s.Tick) },
	})

	c.Tick()
	c.Tick()
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("OnTick saw %v, expected [1 2]", seen)
	}
}

func TestClampInterval(t *testing.T) {
	tests := []struct {
		in, expected time.Duration
	}{
		{0, DefaultTickInterval},
		{-time.Second, DefaultTickInterval},
		{time.Millisecond, MinTickInterval},
		{30 * time.Millisecond, 30 * time.Millisecond},
		{time.Second, MaxTickInterval},
	}

	for _, tc := range tests {
		if got := clampInterval(tc.in); got != tc.expected {
			t.Errorf("clampInterval(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestControllerRunStopsAtTerminal(t *testing.T) {
	store := newFakeStore()
	nav := &fakeNavigator{}
	c := newTestController("medium", store, nav)
	rigFatalHit(c, 40)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run returned %v, expected nil at terminal", err)
	}

	ticks := c.Snapshot().Tick
	time.Sleep(5 * MinTickInterval)
	if c.Snapshot().Tick != ticks {
		t.Error("ticks fired after Run returned")
	}
	if nav.count() != 1 {
		t.Errorf("navigator called %d times, expected 1", nav.count())
	}
	if store.best["medium"] != 20 {
		t.Errorf("stored best = %d, expected 20", store.best["medium"])
	}
}

func TestControllerRunCancel(t *testing.T) {
	nav := &fakeNavigator{}
	c := newTestController("easy", nil, nav)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	time.Sleep(3 * MinTickInterval)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, expected context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	ticks := c.Snapshot().Tick
	time.Sleep(5 * MinTickInterval)
	if c.Snapshot().Tick != ticks {
		t.Error("ticks fired after cancellation")
	}
	if nav.count() != 0 {
		t.Error("cancelled session should not navigate")
	}
}

func TestControllerConcurrentTrigger(t *testing.T) {
	c := newTestController("medium", nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Trigger()
				_ = c.Snapshot()
			}
		}()
	}
	for i := 0; i < 50; i++ {
		c.Tick()
	}
	wg.Wait()

	if s := c.Snapshot(); s.Lives < 0 || s.Lives > MaxLives {
		t.Errorf("lives out of range: %d", s.Lives)
	}
}
