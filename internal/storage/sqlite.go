// Package storage keeps a SQLite log of completed runs so players can
// compare move counts. It never stores a game in progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is how completion times are written to the database.
const timeLayout = "2006-01-02 15:04:05"

// ErrInvalidRun is returned when a run is missing required fields.
var ErrInvalidRun = errors.New("storage: invalid run")

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// Run is one completed attempt at a level.
type Run struct {
	ID          int64
	LevelID     string
	Player      string
	Moves       int
	Source      string // "tui", "ssh" or "http"
	CompletedAt time.Time
}

// LevelStats aggregates the runs recorded for one level.
type LevelStats struct {
	LevelID       string
	Runs          int
	Players       int
	BestMoves     int
	AvgMoves      float64
	LastCompleted time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// The special path ":memory:" opens a private in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		expanded, err := expandHome(dbPath)
		if err != nil {
			return nil, err
		}
		dbPath = expanded

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One connection serializes writers and keeps an in-memory database
	// from being split across pool connections.
	db.SetMaxOpenConns(1)

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

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			completed_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level_id, moves ASC, completed_at ASC);
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

// SaveRun records a completed run. A zero CompletedAt means now.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.LevelID == "" {
		return 0, fmt.Errorf("%w: missing level id", ErrInvalidRun)
	}
	if r.Moves < 0 {
		return 0, fmt.Errorf("%w: negative move count %d", ErrInvalidRun, r.Moves)
	}
	if r.CompletedAt.IsZero() {
		r.CompletedAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (level_id, player, moves, source, completed_at) VALUES (?, ?, ?, ?, ?)",
		r.LevelID, r.Player, r.Moves, r.Source, r.CompletedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestRuns retrieves the best N runs for the given level: fewest moves
// first, earlier completion breaking ties.
func (s *Store) BestRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, moves, source, completed_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY moves ASC, completed_at ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var completedAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Player, &r.Moves, &r.Source, &completedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CompletedAt = parseTime(completedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestMoves returns the lowest move count recorded for the level.
// ok is false when the level has no runs yet.
func (s *Store) BestMoves(levelID string) (moves int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(moves) FROM runs WHERE level_id = ?",
		levelID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// LevelStats retrieves aggregated statistics for a level.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var lastCompleted any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), COALESCE(MIN(moves), 0),
		        COALESCE(AVG(moves), 0), MAX(completed_at)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Runs, &stats.Players, &stats.BestMoves, &stats.AvgMoves, &lastCompleted)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastCompleted = parseTime(lastCompleted)

	return stats, nil
}

// ClearRuns deletes all runs for the given level and returns how many
// were removed.
func (s *Store) ClearRuns(levelID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}

// parseTime handles both driver-decoded times and raw text columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02T15:04:05Z"} {
			if parsed, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return parsed.UTC()
			}
		}
	case []byte:
		return parseTime(string(v))
	}
	return time.Time{}
}
