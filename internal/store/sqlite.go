// Package store persists tournament runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/timpalpant/ipd"
)

var ErrRunNotFound = errors.New("run not found")

// Run is one tournament and its results.
type Run struct {
	ID            string
	CreatedAt     time.Time
	NumRounds     int
	Seed          int64
	NumStrategies int
	// Results are in row-major order. Empty when listing runs.
	Results []ipd.MatchupResult
}

// SQLiteDB stores runs in a SQLite database.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (creating if needed) the database at path.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to enable WAL mode")
	}

	return &SQLiteDB{db: db}, nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the tables if they do not exist.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			num_rounds INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			num_strategies INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS matchups (
			run_id TEXT NOT NULL,
			idx INTEGER NOT NULL,
			first_name TEXT NOT NULL,
			second_name TEXT NOT NULL,
			first_score REAL NOT NULL,
			second_score REAL NOT NULL,
			history_json TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (run_id, idx),
			FOREIGN KEY (run_id) REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return errors.Wrap(err, "migration failed")
		}
	}

	return nil
}

// SaveRun stores run and all of its results in a single transaction.
// A new ID is assigned if run.ID is empty, and CreatedAt is set if zero.
func (s *SQLiteDB) SaveRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, num_rounds, seed, num_strategies) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UnixNano(), run.NumRounds, run.Seed, run.NumStrategies)
	if err != nil {
		return errors.Wrapf(err, "failed to insert run %v", run.ID)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO matchups (run_id, idx, first_name, second_name, first_score, second_score, history_json, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare matchup insert")
	}
	defer stmt.Close()

	for k, result := range run.Results {
		history, err := json.Marshal(result.History)
		if err != nil {
			return errors.Wrapf(err, "failed to encode history of matchup %d", k)
		}

		var errStr string
		if result.Failed() {
			errStr = result.Err.Error()
		}

		_, err = stmt.ExecContext(ctx, run.ID, k, result.First, result.Second,
			result.Result[ipd.Player0], result.Result[ipd.Player1], string(history), errStr)
		if err != nil {
			return errors.Wrapf(err, "failed to insert matchup %d", k)
		}
	}

	return tx.Commit()
}

// LoadRun returns the run with the given ID, including its results.
func (s *SQLiteDB) LoadRun(ctx context.Context, id string) (*Run, error) {
	run := &Run{ID: id}
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, num_rounds, seed, num_strategies FROM runs WHERE id = ?`, id).
		Scan(&createdAt, &run.NumRounds, &run.Seed, &run.NumStrategies)
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(ErrRunNotFound, "id %v", id)
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to load run %v", id)
	}
	run.CreatedAt = time.Unix(0, createdAt)

	rows, err := s.db.QueryContext(ctx,
		`SELECT first_name, second_name, first_score, second_score, history_json, error
		 FROM matchups WHERE run_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load matchups of run %v", id)
	}
	defer rows.Close()

	for rows.Next() {
		var result ipd.MatchupResult
		var history, errStr string
		err := rows.Scan(&result.First, &result.Second,
			&result.Result[ipd.Player0], &result.Result[ipd.Player1], &history, &errStr)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan matchup")
		}

		if err := json.Unmarshal([]byte(history), &result.History); err != nil {
			return nil, errors.Wrap(err, "failed to decode history")
		}
		if errStr != "" {
			result.Err = errors.New(errStr)
		}

		run.Results = append(run.Results, result)
	}

	return run, rows.Err()
}

// ListRuns returns all runs, most recent first, without their results.
func (s *SQLiteDB) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, num_rounds, seed, num_strategies FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}
	defer rows.Close()

	var result []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		if err := rows.Scan(&run.ID, &createdAt, &run.NumRounds, &run.Seed, &run.NumStrategies); err != nil {
			return nil, errors.Wrap(err, "failed to scan run")
		}
		run.CreatedAt = time.Unix(0, createdAt)
		result = append(result, run)
	}

	return result, rows.Err()
}
