// Package history provides SQLite-backed run history for confgen.
//
// The report file on disk can be rewritten or additively merged depending
// on configuration; the history store is the sound record either way: one
// row per batch run, keyed by a fresh run id, never double-counted.
package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fentz26/confgen/internal/models"
)

// Run is one recorded implementation batch.
type Run struct {
	ID          string    `json:"id"`
	CatalogHash string    `json:"catalog_hash"`
	TotalTasks  int       `json:"total_tasks"`
	Successful  int       `json:"successful"`
	Failed      int       `json:"failed"`
	ElapsedTime string    `json:"elapsed_time"`
	StartedAt   time.Time `json:"started_at"`
}

// Store provides access to the confgen history database.
type Store struct {
	db *sql.DB
}

// New creates a Store and runs migrations.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		catalog_hash TEXT NOT NULL,
		total_tasks INTEGER NOT NULL,
		successful INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		elapsed_time TEXT NOT NULL,
		started_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_results (
		run_id TEXT NOT NULL,
		task_id TEXT NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		success INTEGER NOT NULL,
		detail TEXT,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_run_results_run_id ON run_results(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RecordRun persists one batch run with its per-task results. The catalog
// that produced the run is hashed so identical reruns are recognizable.
func (s *Store) RecordRun(rep models.Report, catalog []models.Task) (*Run, error) {
	run := &Run{
		ID:          uuid.New().String(),
		CatalogHash: HashTasks(catalog),
		TotalTasks:  rep.TotalTasks,
		Successful:  rep.Successful,
		Failed:      rep.Failed,
		ElapsedTime: rep.ElapsedTime,
		StartedAt:   rep.Timestamp.UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, catalog_hash, total_tasks, successful, failed, elapsed_time, started_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CatalogHash, run.TotalTasks, run.Successful, run.Failed, run.ElapsedTime, run.StartedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	for _, res := range rep.Results {
		_, err = tx.Exec(
			`INSERT INTO run_results (run_id, task_id, name, type, success, detail) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, res.ID, res.Name, res.Type, res.Success, res.Detail,
		)
		if err != nil {
			return nil, fmt.Errorf("insert run result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}
	return run, nil
}

// ListRuns returns all recorded runs, newest first.
func (s *Store) ListRuns() ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, catalog_hash, total_tasks, successful, failed, elapsed_time, started_at FROM runs ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CatalogHash, &run.TotalTasks, &run.Successful, &run.Failed, &run.ElapsedTime, &run.StartedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun retrieves one run and its per-task results. Returns nil if the
// run id is unknown.
func (s *Store) GetRun(id string) (*Run, []models.Result, error) {
	var run Run
	err := s.db.QueryRow(
		`SELECT id, catalog_hash, total_tasks, successful, failed, elapsed_time, started_at FROM runs WHERE id = ?`,
		id,
	).Scan(&run.ID, &run.CatalogHash, &run.TotalTasks, &run.Successful, &run.Failed, &run.ElapsedTime, &run.StartedAt)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query run: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT task_id, name, type, success, detail FROM run_results WHERE run_id = ?`,
		id,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("query run results: %w", err)
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		var res models.Result
		if err := rows.Scan(&res.ID, &res.Name, &res.Type, &res.Success, &res.Detail); err != nil {
			return nil, nil, fmt.Errorf("scan run result: %w", err)
		}
		results = append(results, res)
	}
	return &run, results, rows.Err()
}

// HashTasks creates a SHA256 hash of the catalog for reproducibility.
func HashTasks(tasks []models.Task) string {
	data, err := json.Marshal(tasks)
	if err != nil {
		return "hash_error"
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
