package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ErrRunNotFound is returned by GetRun for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// StepResult is one entry of a run's results, in completion order.
type StepResult struct {
	StepID string `json:"step_id"`
	Value  string `json:"value"`
}

// Run is the stored record of one plan execution.
type Run struct {
	ID        string       `json:"id"`
	Task      string       `json:"task"`
	Plan      string       `json:"plan"`
	Result    string       `json:"result,omitempty"`
	Status    string       `json:"status"`
	Error     string       `json:"error,omitempty"`
	Results   []StepResult `json:"results"`
	CreatedAt time.Time    `json:"created_at"`
}

// RunStore keeps a history of finished runs in sqlite.
type RunStore struct {
	DB *sql.DB
}

func NewRunStore(dbPath string) (*RunStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Create tables if not exist
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			task TEXT,
			plan TEXT,
			result TEXT,
			status TEXT,
			error TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_results (
			run_id TEXT,
			position INTEGER,
			step_id TEXT,
			value TEXT,
			PRIMARY KEY (run_id, position)
		);`,
	}
	for _, q := range queries {
		_, err = db.Exec(q)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	return &RunStore{DB: db}, nil
}

func (s *RunStore) Close() error {
	return s.DB.Close()
}

// SaveRun stores a run and its results in one transaction.
func (s *RunStore) SaveRun(run Run) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO runs (id, task, plan, result, status, error, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.Exec(query, run.ID, run.Task, run.Plan, run.Result, run.Status, run.Error, run.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	for i, r := range run.Results {
		query := `INSERT INTO run_results (run_id, position, step_id, value) VALUES (?, ?, ?, ?)`
		if _, err := tx.Exec(query, run.ID, i, r.StepID, r.Value); err != nil {
			return fmt.Errorf("failed to save result %s of run %s: %w", r.StepID, run.ID, err)
		}
	}
	return tx.Commit()
}

// ListRuns returns the most recent runs first, without their step results.
func (s *RunStore) ListRuns(limit int) ([]Run, error) {
	query := `SELECT id, task, plan, result, status, error, created_at FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Task, &r.Plan, &r.Result, &r.Status, &r.Error, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns a run with its step results in completion order.
func (s *RunStore) GetRun(id string) (*Run, error) {
	var r Run
	query := `SELECT id, task, plan, result, status, error, created_at FROM runs WHERE id = ?`
	err := s.DB.QueryRow(query, id).Scan(&r.ID, &r.Task, &r.Plan, &r.Result, &r.Status, &r.Error, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(`SELECT step_id, value FROM run_results WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sr StepResult
		if err := rows.Scan(&sr.StepID, &sr.Value); err != nil {
			return nil, err
		}
		r.Results = append(r.Results, sr)
	}
	return &r, rows.Err()
}
