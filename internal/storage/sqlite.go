// Package storage provides SQLite-based persistence for solve runs and
// hand-played records. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// SolveRun is one invocation of the solver against a map.
type SolveRun struct {
	ID        string // UUID, assigned by SaveRun when empty
	MapID     string
	MapHash   string
	Found     bool
	Moves     int
	Expanded  int
	Duration  time.Duration
	CreatedAt time.Time
}

// PlayRecord is a map finished by hand in the play screen.
type PlayRecord struct {
	ID        int64
	MapID     string
	Player    string
	Moves     int
	Optimal   int
	CreatedAt time.Time
}

// Perfect reports whether the player matched the shortest path.
func (p PlayRecord) Perfect() bool {
	return p.Optimal > 0 && p.Moves == p.Optimal
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A nil logger discards messages.
func Open(dbPath string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

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

	store := &Store{db: db, logger: logger}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	logger.Debug("database ready", "path", dbPath)

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solve_runs (
			id TEXT PRIMARY KEY,
			map_id TEXT NOT NULL,
			map_hash TEXT NOT NULL,
			found INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			expanded INTEGER NOT NULL DEFAULT 0,
			duration_us INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solve_runs_map_id ON solve_runs(map_id);

		CREATE TABLE IF NOT EXISTS play_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			map_id TEXT NOT NULL,
			player TEXT NOT NULL,
			moves INTEGER NOT NULL,
			optimal INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_play_records_best ON play_records(map_id, moves ASC);
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

// SaveRun records a solver run and returns its ID.
func (s *Store) SaveRun(run SolveRun) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO solve_runs (id, map_id, map_hash, found, moves, expanded, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.MapID, run.MapHash, run.Found, run.Moves, run.Expanded, run.Duration.Microseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	s.logger.Debug("run saved", "id", run.ID, "map", run.MapID, "found", run.Found)
	return run.ID, nil
}

// RecentRuns returns the latest runs, newest first. An empty mapID matches
// every map.
func (s *Store) RecentRuns(mapID string, limit int) ([]SolveRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, map_id, map_hash, found, moves, expanded, duration_us, created_at
		 FROM solve_runs
		 WHERE ? = '' OR map_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		mapID, mapID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []SolveRun
	for rows.Next() {
		var r SolveRun
		var durationUS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MapID, &r.MapHash, &r.Found, &r.Moves, &r.Expanded, &durationUS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationUS) * time.Microsecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// SavePlay records a finished play and returns the ID of the inserted record.
func (s *Store) SavePlay(rec PlayRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO play_records (map_id, player, moves, optimal) VALUES (?, ?, ?, ?)",
		rec.MapID, rec.Player, rec.Moves, rec.Optimal,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save play: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	s.logger.Debug("play saved", "map", rec.MapID, "player", rec.Player, "moves", rec.Moves)
	return id, nil
}

// TopPlays retrieves the best N plays for the given map.
// Results are ordered by move count ascending, earliest first on ties.
func (s *Store) TopPlays(mapID string, limit int) ([]PlayRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, map_id, player, moves, optimal, created_at
		 FROM play_records
		 WHERE map_id = ?
		 ORDER BY moves ASC, id ASC
		 LIMIT ?`,
		mapID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var records []PlayRecord
	for rows.Next() {
		var p PlayRecord
		var createdAt any
		if err := rows.Scan(&p.ID, &p.MapID, &p.Player, &p.Moves, &p.Optimal, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		records = append(records, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestPlay returns the lowest-move play for the given map, or nil if the
// map has never been finished by hand.
func (s *Store) BestPlay(mapID string) (*PlayRecord, error) {
	top, err := s.TopPlays(mapID, 1)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, nil
	}
	return &top[0], nil
}

// MapStats contains aggregated statistics for a map.
type MapStats struct {
	MapID       string
	Runs        int
	Solved      int
	AvgExpanded float64
	Plays       int
	BestMoves   int // 0 when never played
	LastPlayed  time.Time
}

// MapStats retrieves aggregated statistics for a specific map.
func (s *Store) MapStats(mapID string) (*MapStats, error) {
	stats := &MapStats{MapID: mapID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(found), 0), COALESCE(AVG(expanded), 0)
		 FROM solve_runs WHERE map_id = ?`,
		mapID,
	).Scan(&stats.Runs, &stats.Solved, &stats.AvgExpanded)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0)
		 FROM play_records WHERE map_id = ?`,
		mapID,
	).Scan(&stats.Plays, &stats.BestMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get play stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM play_records WHERE map_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		mapID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or text for
// DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
