package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists the snapshot stack to SQLite, so undo history
// survives a process restart. It is suitable for single-process use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.Mutex
	closed bool
}

// NewSQLiteStore creates a SQLite-backed history store.
// The path should be a file path (e.g. "./history.db") or ":memory:"
// for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			data BLOB NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Push implements Store.
func (s *SQLiteStore) Push(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO history (timestamp, data) VALUES (?, ?)
	`, time.Now().UTC().Format(time.RFC3339Nano), data)
	if err != nil {
		return fmt.Errorf("push snapshot: %w", err)
	}
	return nil
}

// Pop implements Store. The newest row is read and deleted in one
// transaction.
func (s *SQLiteStore) Pop() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin pop: %w", err)
	}
	defer tx.Rollback()

	var id int64
	var data []byte
	err = tx.QueryRow(`
		SELECT id, data FROM history ORDER BY id DESC LIMIT 1
	`).Scan(&id, &data)
	if err == sql.ErrNoRows {
		return nil, ErrEmptyHistory
	}
	if err != nil {
		return nil, fmt.Errorf("pop snapshot: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM history WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit pop: %w", err)
	}
	return data, nil
}

// Len implements Store.
func (s *SQLiteStore) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStoreClosed
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM history`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return count, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
