// Package history provides SQLite-based persistence of run summaries.
// The progress core stays stateless; history records finished runs so
// the CLI can show them later.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps an SQLite database holding run history.
type DB struct {
	conn *sql.DB
	path string
}

// Run is one recorded run.
type Run struct {
	ID        string
	Started   time.Time
	Duration  time.Duration
	Total     int
	Completed int
	Failed    int
}

// Succeeded reports whether every step of the run completed.
func (r Run) Succeeded() bool {
	return r.Failed == 0 && r.Completed == r.Total
}

// DefaultPath returns the XDG data path for the history database.
func DefaultPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "pacer", "pacer.db")
}

// Open opens the history database at the given path, creating parent
// directories and the schema as needed. WAL mode is enabled for
// concurrent reads.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DB{conn: conn, path: path}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	started_at  INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	total       INTEGER NOT NULL,
	completed   INTEGER NOT NULL,
	failed      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
`

// RecordRun inserts a finished run.
func (db *DB) RecordRun(r Run) error {
	_, err := db.conn.Exec(
		`INSERT INTO runs (id, started_at, duration_ms, total, completed, failed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Started.UnixMilli(), r.Duration.Milliseconds(),
		r.Total, r.Completed, r.Failed,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(
		`SELECT id, started_at, duration_ms, total, completed, failed
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedMs, durationMs int64
		if err := rows.Scan(&r.ID, &startedMs, &durationMs, &r.Total, &r.Completed, &r.Failed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Started = time.UnixMilli(startedMs)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
