package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/finsurf/internal/games/surf"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScore("hard", 90); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if hs, _ := store.HighScore("hard"); hs != 90 {
		t.Errorf("Expected high score 90 after reopen, got %d", hs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("medium")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 for an empty table, got %d", hs)
	}

	if err := store.SetHighScore("medium", 150); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore("easy", 40); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	// Overwrite replaces, it does not keep the max
	if err := store.SetHighScore("medium", 120); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	tests := []struct {
		difficulty string
		expected   int
	}{
		{"medium", 120},
		{"easy", 40},
		{"hard", 0},
	}
	for _, tc := range tests {
		hs, err := store.HighScore(tc.difficulty)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tc.difficulty, err)
		}
		if hs != tc.expected {
			t.Errorf("HighScore(%q) = %d, expected %d", tc.difficulty, hs, tc.expected)
		}
	}

	all, err := store.AllHighScores()
	if err != nil {
		t.Fatalf("AllHighScores() failed: %v", err)
	}
	if len(all) != 2 || all["medium"].Score != 120 || all["easy"].Score != 40 {
		t.Errorf("AllHighScores() = %+v", all)
	}
	if all["medium"].UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []surf.RunRecord{
		{SessionID: "a", Difficulty: "easy", Score: 100, Ticks: 300},
		{SessionID: "b", Difficulty: "easy", Score: 50, Ticks: 120},
		{SessionID: "c", Difficulty: "easy", Score: 200, Ticks: 900},
		{SessionID: "d", Difficulty: "hard", Score: 500, Ticks: 1000},
	}
	for _, r := range runs {
		if err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("easy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	for i, expected := range []int{200, 100, 50} {
		if top[i].Score != expected {
			t.Errorf("Run %d score = %d, expected %d", i, top[i].Score, expected)
		}
	}
	if top[0].SessionID != "c" || top[0].Ticks != 900 {
		t.Errorf("Top run = %+v", top[0])
	}

	limited, err := store.TopRuns("easy", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].SessionID != "d" || recent[1].SessionID != "c" {
		t.Errorf("RecentRuns() = %+v", recent)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	for _, d := range []string{"easy", "hard"} {
		if err := store.SetHighScore(d, 10); err != nil {
			t.Fatalf("SetHighScore() failed: %v", err)
		}
		if err := store.RecordRun(surf.RunRecord{SessionID: d, Difficulty: d, Score: 10}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if hs, _ := store.HighScore("easy"); hs != 0 {
		t.Errorf("Expected easy high score cleared, got %d", hs)
	}
	if runs, _ := store.TopRuns("easy", 10); len(runs) != 0 {
		t.Errorf("Expected easy runs cleared, got %d", len(runs))
	}
	if hs, _ := store.HighScore("hard"); hs != 10 {
		t.Errorf("Expected hard high score kept, got %d", hs)
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores(\"\") failed: %v", err)
	}
	if all, _ := store.AllHighScores(); len(all) != 0 {
		t.Errorf("Expected every high score cleared, got %v", all)
	}
	if runs, _ := store.RecentRuns(10); len(runs) != 0 {
		t.Errorf("Expected every run cleared, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("medium")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	for _, score := range []int{10, 30} {
		if err := store.RecordRun(surf.RunRecord{SessionID: "s", Difficulty: "medium", Score: score, Ticks: 100}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	if err := store.SetHighScore("medium", 30); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	stats, err := store.Stats("medium")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalTicks != 200 {
		t.Errorf("TotalTicks = %d, expected 200", stats.TotalTicks)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreWithController(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetHighScore("easy", 5); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	ended := 0
	c := surf.NewController(surf.ControllerConfig{
		Difficulty: "easy",
		Width:      800,
		Height:     600,
		Store:      store,
		Random:     constSource(0),
		Navigator:  surf.NavigatorFunc(func(int, string) { ended++ }),
	})

	// Every hazard spawns at the top of the band; hold the flier there
	for i := 0; i < 10000 && !c.Snapshot().Terminal; i++ {
		c.Trigger()
		c.Tick()
	}
	s := c.Snapshot()
	if !s.Terminal {
		t.Fatal("session did not end")
	}
	if ended != 1 {
		t.Errorf("navigator called %d times, expected 1", ended)
	}

	expected := s.PersistedScore()
	if expected < 5 {
		expected = 5
	}
	if hs, _ := store.HighScore("easy"); hs != expected {
		t.Errorf("HighScore = %d, expected %d", hs, expected)
	}
	runs, err := store.TopRuns("easy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != s.PersistedScore() {
		t.Errorf("runs = %+v", runs)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

// constSource returns the same draw every time.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
