// Package journal provides optional SQLite-backed recording of
// simulation runs. The simulation never reads it back; it exists so a
// run can be inspected after the fact.
// See design doc Section 5.
package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/kbrimm/Flowers-for-Algorithm/internal/maze"
	"github.com/kbrimm/Flowers-for-Algorithm/internal/needs"
)

// DB wraps a SQLite connection for run recording.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		rat_name TEXT NOT NULL,
		seed INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		cycles INTEGER NOT NULL DEFAULT 0,
		total_distance INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS cycles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		cycle INTEGER NOT NULL,
		destination TEXT NOT NULL,
		distance INTEGER NOT NULL,
		pct_fun INTEGER NOT NULL,
		pct_health INTEGER NOT NULL,
		pct_hunger INTEGER NOT NULL,
		pct_sleep INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cycles_run ON cycles(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// StartRun records a new run and returns its identifier.
func (db *DB) StartRun(ratName string, seed int64) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO runs (id, rat_name, seed, started_at) VALUES (?, ?, ?, ?)",
		id, ratName, seed, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// RecordCycle appends one completed cycle to a run.
func (db *DB) RecordCycle(runID string, cycle int, dest maze.Node, distance int, pct needs.Percent) error {
	_, err := db.conn.Exec(
		`INSERT INTO cycles
		(run_id, cycle, destination, distance, pct_fun, pct_health, pct_hunger, pct_sleep)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, cycle, dest.String(), distance,
		pct.Fun, pct.Health, pct.Hunger, pct.Sleep,
	)
	if err != nil {
		return fmt.Errorf("insert cycle %d: %w", cycle, err)
	}
	return nil
}

// FinishRun stores the final cycle count and distance for a run.
func (db *DB) FinishRun(runID string, cycles, totalDistance int) error {
	_, err := db.conn.Exec(
		"UPDATE runs SET cycles = ?, total_distance = ? WHERE id = ?",
		cycles, totalDistance, runID,
	)
	return err
}

// CycleRow is one recorded cycle, as read back from the journal.
type CycleRow struct {
	Cycle       int    `db:"cycle"`
	Destination string `db:"destination"`
	Distance    int    `db:"distance"`
	PctFun      int    `db:"pct_fun"`
	PctHealth   int    `db:"pct_health"`
	PctHunger   int    `db:"pct_hunger"`
	PctSleep    int    `db:"pct_sleep"`
}

// RunCycles returns all recorded cycles for a run, in order.
func (db *DB) RunCycles(runID string) ([]CycleRow, error) {
	var rows []CycleRow
	err := db.conn.Select(&rows,
		`SELECT cycle, destination, distance, pct_fun, pct_health, pct_hunger, pct_sleep
		FROM cycles WHERE run_id = ? ORDER BY cycle`,
		runID,
	)
	return rows, err
}
