// Package persistence stores tournament results in SQLite so standings can
// be merged across runs.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/robot-league/internal/scores"
	"github.com/talgya/robot-league/internal/tournament"
)

// DB wraps a SQLite connection holding stored runs.
type DB struct {
	conn *sqlx.DB
}

// Run is one stored tournament.
type Run struct {
	ID        string
	StartedAt time.Time
	Seed      int64
	Rounds    int
	Frames    scores.Frames
}

type runRow struct {
	ID        string `db:"id"`
	StartedAt int64  `db:"started_at"`
	Seed      int64  `db:"seed"`
	Rounds    int    `db:"rounds"`
	Frames    int64  `db:"frames"`
}

// SideRecord is one side's record merged over every stored run it took part in.
type SideRecord struct {
	Name   string
	Runs   int
	Rounds int
	Frames scores.Frames // frames played over those rounds
	Totals scores.Totals
}

// RoundFrames is the mean round length in frames.
func (s *SideRecord) RoundFrames() scores.Frames {
	if s.Rounds == 0 {
		return 0
	}
	return s.Frames / scores.Frames(s.Rounds)
}

type snapshotRow struct {
	Side     string `db:"side"`
	Snapshot string `db:"snapshot_json"`
	Rounds   int    `db:"rounds"`
	Frames   int64  `db:"frames"`
}

func toMillis(t time.Time) int64    { return t.UTC().UnixMilli() }
func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
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
		started_at INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		rounds INTEGER NOT NULL,
		frames INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS side_totals (
		run_id TEXT NOT NULL REFERENCES runs(id),
		side TEXT NOT NULL,
		strategy TEXT NOT NULL,
		snapshot_json TEXT NOT NULL,
		PRIMARY KEY (run_id, side)
	);

	CREATE INDEX IF NOT EXISTS idx_side_totals_side ON side_totals(side);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores a tournament result with one snapshot per side. Saving the
// same run again replaces it.
func (db *DB) SaveRun(res *tournament.Result) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM side_totals WHERE run_id = ?", res.ID); err != nil {
		return err
	}
	_, err = tx.Exec(
		"INSERT OR REPLACE INTO runs (id, started_at, seed, rounds, frames) VALUES (?, ?, ?, ?, ?)",
		res.ID, toMillis(res.StartedAt), res.Seed, res.Rounds, int64(res.Frames),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", res.ID, err)
	}

	stmt, err := tx.Preparex(`INSERT INTO side_totals
		(run_id, side, strategy, snapshot_json)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range res.Sides {
		snapJSON, err := json.Marshal(e.Scores.Snapshot())
		if err != nil {
			return fmt.Errorf("encode side %s: %w", e.Name, err)
		}
		if _, err := stmt.Exec(res.ID, e.Name, e.Strategy.Name, string(snapJSON)); err != nil {
			return fmt.Errorf("insert side %s: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("run saved", "id", res.ID, "sides", len(res.Sides), "rounds", res.Rounds)
	return nil
}

// Runs returns every stored run, oldest first.
func (db *DB) Runs() ([]Run, error) {
	var rows []runRow
	err := db.conn.Select(&rows,
		"SELECT id, started_at, seed, rounds, frames FROM runs ORDER BY started_at, rowid")
	if err != nil {
		return nil, err
	}
	runs := make([]Run, len(rows))
	for i, r := range rows {
		runs[i] = Run{
			ID:        r.ID,
			StartedAt: fromMillis(r.StartedAt),
			Seed:      r.Seed,
			Rounds:    r.Rounds,
			Frames:    scores.Frames(r.Frames),
		}
	}
	return runs, nil
}

// LoadSideTotals returns the stored records of one side, oldest run first.
func (db *DB) LoadSideTotals(side string) ([]scores.Totals, error) {
	rows, err := db.snapshots("WHERE s.side = ?", side)
	if err != nil {
		return nil, err
	}
	out := make([]scores.Totals, 0, len(rows))
	for _, r := range rows {
		t, err := decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Campaign merges every side's stored records across runs, in the order the
// sides first appeared.
func (db *DB) Campaign() ([]*SideRecord, error) {
	rows, err := db.snapshots("")
	if err != nil {
		return nil, err
	}

	var out []*SideRecord
	byName := make(map[string]*SideRecord)
	for _, r := range rows {
		t, err := decode(r)
		if err != nil {
			return nil, err
		}
		rec, ok := byName[r.Side]
		if !ok {
			rec = &SideRecord{Name: r.Side}
			byName[r.Side] = rec
			out = append(out, rec)
		}
		rec.Totals.CombineAcrossRuns(&t)
		rec.Runs++
		rec.Rounds += r.Rounds
		rec.Frames += scores.Frames(r.Frames)
	}
	return out, nil
}

func (db *DB) snapshots(where string, args ...any) ([]snapshotRow, error) {
	var rows []snapshotRow
	err := db.conn.Select(&rows, `SELECT s.side, s.snapshot_json, r.rounds, r.frames
		FROM side_totals s JOIN runs r ON r.id = s.run_id `+where+`
		ORDER BY r.started_at, r.rowid, s.rowid`, args...)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}
	return rows, nil
}

func decode(r snapshotRow) (scores.Totals, error) {
	var snap scores.Snapshot
	if err := json.Unmarshal([]byte(r.Snapshot), &snap); err != nil {
		return scores.Totals{}, fmt.Errorf("decode side %s: %w", r.Side, err)
	}
	return scores.FromSnapshot(snap), nil
}
