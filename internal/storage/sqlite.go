// Package storage provides SQLite-based persistence for Fin Surf high scores
// and run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/finsurf/internal/games/surf"
)

// DefaultPath is where the CLI keeps its database.
const DefaultPath = "~/.arcade/finsurf.db"

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Store is the controller's persistence collaborator.
var (
	_ surf.HighScoreStore = (*Store)(nil)
	_ surf.RunRecorder    = (*Store)(nil)
)

// HighScoreEntry is the best score recorded for one difficulty.
type HighScoreEntry struct {
	Difficulty string
	Score      int
	UpdatedAt  time.Time
}

// RunEntry represents one finished session.
type RunEntry struct {
	ID         int64
	SessionID  string
	Difficulty string
	Score      int
	Ticks      int
	CreatedAt  time.Time
}

// Stats contains aggregated statistics for a difficulty.
type Stats struct {
	Difficulty string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalTicks int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			difficulty TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the best score for the difficulty, or 0 if none is stored.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE difficulty = ?",
		difficulty,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore replaces the stored best for the difficulty.
// The caller decides whether score beats the previous value.
func (s *Store) SetHighScore(difficulty string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (difficulty, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(difficulty) DO UPDATE SET
		   score = excluded.score,
		   updated_at = excluded.updated_at`,
		difficulty, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// AllHighScores returns the stored best for every difficulty that has one.
func (s *Store) AllHighScores() (map[string]HighScoreEntry, error) {
	rows, err := s.db.Query("SELECT difficulty, score, updated_at FROM high_scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]HighScoreEntry)
	for rows.Next() {
		var e HighScoreEntry
		var updatedAt any
		if err := rows.Scan(&e.Difficulty, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries[e.Difficulty] = e
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecordRun appends a finished session to the run history.
func (s *Store) RecordRun(run surf.RunRecord) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (session_id, difficulty, score, ticks) VALUES (?, ?, ?, ?)",
		run.SessionID, run.Difficulty, run.Score, run.Ticks,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// TopRuns retrieves the best N runs for the difficulty, highest score first.
func (s *Store) TopRuns(difficulty string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, session_id, difficulty, score, ticks, created_at
		 FROM runs
		 WHERE difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
}

// RecentRuns retrieves the most recent runs across all difficulties.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRuns(
		`SELECT id, session_id, difficulty, score, ticks, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Difficulty, &e.Score, &e.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearScores deletes the high score and run history for the difficulty.
// An empty difficulty clears everything.
func (s *Store) ClearScores(difficulty string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback()

	where, args := "", []any{}
	if difficulty != "" {
		where, args = " WHERE difficulty = ?", []any{difficulty}
	}

	for _, table := range []string{"high_scores", "runs"} {
		if _, err := tx.Exec("DELETE FROM "+table+where, args...); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a difficulty. HighScore comes
// from the high_scores table so it survives a run history that was never
// recorded.
func (s *Store) Stats(difficulty string) (*Stats, error) {
	stats := &Stats{Difficulty: difficulty}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(SUM(ticks), 0), MAX(created_at)
		 FROM runs WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.RunsCount, &stats.AvgScore, &stats.TotalTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	best, err := s.HighScore(difficulty)
	if err != nil {
		return nil, err
	}
	stats.HighScore = best

	return stats, nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
