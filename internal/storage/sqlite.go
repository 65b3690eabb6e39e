// Package storage provides SQLite-based persistence for session journals.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A journal records everything needed to replay a session deterministically:
// the RNG seed, the grid dimensions and the tick-stamped input trace.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// Session outcomes recorded in the journal.
const (
	OutcomeDied    = "died"
	OutcomeAborted = "aborted"
)

// Trace event kinds recorded in the journal.
const (
	TraceDirection = "direction"
	TraceButtonA   = "button_a"
	TraceButtonB   = "button_b"
)

// SessionRecord represents one completed play session.
type SessionRecord struct {
	ID         int64
	Seed       uint32
	GridWidth  uint8
	GridHeight uint8
	Score      int
	FoodEaten  int
	Ticks      int
	Outcome    string
	Duration   int // Duration in seconds
	CreatedAt  time.Time
}

// TraceEvent is a single input event stamped with the presentation tick
// on which it was applied.
type TraceEvent struct {
	Tick int
	Kind string
	Dir  string // "up", "down", "left" or "right"; empty for buttons
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			grid_width INTEGER NOT NULL,
			grid_height INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			food_eaten INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);

		CREATE TABLE IF NOT EXISTS session_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			dir TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_session_events_session ON session_events(session_id, tick);
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

// SaveSession records a completed session together with its input trace.
// The record and the trace are written in one transaction.
// Returns the ID of the inserted session.
func (s *Store) SaveSession(rec SessionRecord, trace []TraceEvent) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO sessions
		 (seed, grid_width, grid_height, score, food_eaten, ticks, outcome, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Seed,
		rec.GridWidth,
		rec.GridHeight,
		rec.Score,
		rec.FoodEaten,
		rec.Ticks,
		rec.Outcome,
		rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO session_events (session_id, tick, kind, dir) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare trace insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range trace {
		if _, err := stmt.Exec(id, ev.Tick, ev.Kind, ev.Dir); err != nil {
			return 0, fmt.Errorf("storage: cannot save trace event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit session: %w", err)
	}

	return id, nil
}

// SessionByID retrieves a session record by ID.
// Returns nil without error when the session does not exist.
func (s *Store) SessionByID(id int64) (*SessionRecord, error) {
	var rec SessionRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, grid_width, grid_height, score, food_eaten, ticks, outcome, duration_secs, created_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	).Scan(
		&rec.ID,
		&rec.Seed,
		&rec.GridWidth,
		&rec.GridHeight,
		&rec.Score,
		&rec.FoodEaten,
		&rec.Ticks,
		&rec.Outcome,
		&rec.Duration,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	rec.CreatedAt = parseTimestamp(createdAt)
	return &rec, nil
}

// SessionTrace retrieves the input trace of a session ordered by tick.
func (s *Store) SessionTrace(sessionID int64) ([]TraceEvent, error) {
	rows, err := s.db.Query(
		`SELECT tick, kind, dir
		 FROM session_events
		 WHERE session_id = ?
		 ORDER BY tick, id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query trace: %w", err)
	}
	defer rows.Close()

	var trace []TraceEvent
	for rows.Next() {
		var ev TraceEvent
		if err := rows.Scan(&ev.Tick, &ev.Kind, &ev.Dir); err != nil {
			return nil, fmt.Errorf("storage: cannot scan trace row: %w", err)
		}
		trace = append(trace, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return trace, nil
}

// RecentSessions retrieves the most recent sessions.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, grid_width, grid_height, score, food_eaten, ticks, outcome, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdAt any
		if err := rows.Scan(
			&rec.ID,
			&rec.Seed,
			&rec.GridWidth,
			&rec.GridHeight,
			&rec.Score,
			&rec.FoodEaten,
			&rec.Ticks,
			&rec.Outcome,
			&rec.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DeleteSession removes a session and its trace.
func (s *Store) DeleteSession(id int64) error {
	if _, err := s.db.Exec("DELETE FROM session_events WHERE session_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete trace: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	return nil
}

// ClearSessions deletes all sessions and traces.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM session_events"); err != nil {
		return fmt.Errorf("storage: cannot clear traces: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// JournalStats contains aggregated statistics over the journal.
type JournalStats struct {
	Sessions   int
	TotalTicks int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over all recorded sessions.
func (s *Store) Stats() (*JournalStats, error) {
	stats := &JournalStats{}

	err := s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(ticks), 0) FROM sessions",
	).Scan(&stats.Sessions, &stats.TotalTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get journal stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM sessions ORDER BY created_at DESC LIMIT 1",
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or the
// SQLite text datetime format.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
