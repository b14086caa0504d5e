// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tallyhq/tally/storage"
)

// Store keeps each slot as one row of a KV table. The SQL sticks to the
// subset both supported drivers accept: $1 placeholders and
// ON CONFLICT ... DO UPDATE work on sqlite and postgres alike.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS game_state (
    key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// Open connects with the given driver name ("sqlite" or "postgres") and
// DSN, verifies the connection, and bootstraps the slot table. Safe to call
// against an existing database - the schema uses IF NOT EXISTS.
func Open(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get fetches the value stored under key, or storage.ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	var payload string
	err := s.db.QueryRow(`
		SELECT payload FROM game_state WHERE key = $1
	`, key).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read slot: %w", err)
	}
	return []byte(payload), nil
}

// Set overwrites the value stored under key.
func (s *Store) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO game_state (key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`, key, string(value), time.Now())

	if err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}

// Delete clears the slot. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM game_state WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("clear slot: %w", err)
	}
	return nil
}
