// Package prefs provides the per-installation key-value store backing the
// session credential and user identity, kept separate from any UI
// preference keys by prefix.
package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite-backed key-value storage
type Store struct {
	db *sql.DB
}

// Open creates the storage directory if needed, opens the database and
// initializes the schema
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "user_prefs.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open prefs database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize prefs schema: %w", err)
	}

	return store, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Set stores value under key, overwriting any prior value
func (s *Store) Set(key, value string) error {
	query := `
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := s.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to set pref %q: %w", key, err)
	}
	return nil
}

// Get retrieves the value stored under key. A missing key returns "" with
// ok=false and no error.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	query := `SELECT value FROM prefs WHERE key = ?`

	err = s.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get pref %q: %w", key, err)
	}
	return value, true, nil
}

// Delete removes key; deleting an absent key is not an error
func (s *Store) Delete(key string) error {
	query := `DELETE FROM prefs WHERE key = ?`

	if _, err := s.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete pref %q: %w", key, err)
	}
	return nil
}
