// package storage implements durable key-value storage on SQLite
package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// KV is the durable key-value storage consumed by the reactive stores.
//
// Each store owns exactly one key; implementations must treat keys as opaque
// and never share state between them. Get reports presence explicitly so an
// absent key is distinguishable from an empty value.
type KV interface {
	// Get returns the value stored under key, or ok=false if the key is absent.
	Get(key string) (value []byte, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// SQLiteKV implements [KV] on a single SQLite table.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV creates a [SQLiteKV] backed by the given database connection.
// The kv table must exist; run [RunMigrations] first.
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

// Get returns the value stored under key.
func (s *SQLiteKV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *SQLiteKV) Set(key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes key from the table.
func (s *SQLiteKV) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
