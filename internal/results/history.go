package results

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrEmptyHistory is returned when the history store holds no runs yet.
var ErrEmptyHistory = errors.New("run history is empty")

// RunRecord is one indexed row of the history store.
type RunRecord struct {
	ID         int64     `json:"id"`
	Commit     string    `json:"commit"`
	Platform   string    `json:"platform"`
	Timestamp  time.Time `json:"timestamp"`
	Iterations int       `json:"iterations"`
}

// HistoryStore keeps every recorded run in a local SQLite database. The JSON
// result document stays the source of truth; the store exists so past runs can
// be listed and re-used as baselines without tracking loose files.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore opens (and if needed migrates) the history database at path.
func NewHistoryStore(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	s := &HistoryStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return s, nil
}

func (s *HistoryStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		commit_hash TEXT NOT NULL,
		platform TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		iterations INTEGER NOT NULL,
		document TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// SaveRun appends a run to the history.
func (s *HistoryStore) SaveRun(r *RunResult) error {
	doc, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal run document: %w", err)
	}
	query := `INSERT INTO runs (commit_hash, platform, timestamp, iterations, document) VALUES (?, ?, ?, ?, ?)`
	_, err = s.db.Exec(query, r.GitCommit, r.Platform, r.Timestamp.UTC(), r.Iterations, string(doc))
	return err
}

// LatestRun returns the most recently recorded run document.
func (s *HistoryStore) LatestRun() (*RunResult, error) {
	var doc string
	row := s.db.QueryRow(`SELECT document FROM runs ORDER BY timestamp DESC, id DESC LIMIT 1`)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmptyHistory
		}
		return nil, err
	}
	var r RunResult
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		return nil, fmt.Errorf("failed to parse stored run document: %w", err)
	}
	return &r, nil
}

// ListRuns returns up to limit of the most recent run records, newest first.
func (s *HistoryStore) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, commit_hash, platform, timestamp, iterations FROM runs ORDER BY timestamp DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.Commit, &rec.Platform, &rec.Timestamp, &rec.Iterations); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
