package daily

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists completion records in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if missing) the SQLite database at dsn and ensures
// the schema exists. Parent directories are created for relative paths
// such as ./data/daily.db.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_completions (
			date       TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			completed  INTEGER NOT NULL DEFAULT 0,
			summary    TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (date, difficulty)
		);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create daily_completions: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already-opened database. Used by tests.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// RecordCompletion stores a completion for (date, difficulty). The first
// completion of the day wins; later inserts for the same key are ignored.
func (s *Store) RecordCompletion(ctx context.Context, date, difficulty string, summary *Summary) error {
	blob, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_completions (date, difficulty, completed, summary)
		VALUES (?, ?, 1, ?)`,
		date, difficulty, string(blob),
	)
	return err
}

// GetRecord returns the record for (date, difficulty). When nothing has been
// recorded yet it returns a zero record with Completed=false, not an error.
func (s *Store) GetRecord(ctx context.Context, date, difficulty string) (*Record, error) {
	rec := &Record{Date: date, Difficulty: difficulty}
	var completed int
	var blob sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT completed, summary FROM daily_completions WHERE date=? AND difficulty=?`,
		date, difficulty,
	).Scan(&completed, &blob)
	if err == sql.ErrNoRows {
		return rec, nil
	}
	if err != nil {
		return nil, err
	}
	rec.Completed = completed != 0
	if blob.Valid && blob.String != "" {
		var sum Summary
		if err := json.Unmarshal([]byte(blob.String), &sum); err != nil {
			return nil, fmt.Errorf("unmarshal summary: %w", err)
		}
		rec.Summary = &sum
	}
	return rec, nil
}

// ListRecords returns all records for a date, one per difficulty played.
func (s *Store) ListRecords(ctx context.Context, date string) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT difficulty, completed, summary FROM daily_completions WHERE date=? ORDER BY difficulty`,
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec := &Record{Date: date}
		var completed int
		var blob sql.NullString
		if err := rows.Scan(&rec.Difficulty, &completed, &blob); err != nil {
			return nil, err
		}
		rec.Completed = completed != 0
		if blob.Valid && blob.String != "" {
			var sum Summary
			if err := json.Unmarshal([]byte(blob.String), &sum); err != nil {
				return nil, fmt.Errorf("unmarshal summary: %w", err)
			}
			rec.Summary = &sum
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
