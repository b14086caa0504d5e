// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package memory

import (
	"sync"

	"github.com/tallyhq/tally/storage"
)

// Store is an in-process key-value store. It backs tests and the ephemeral
// "memory" backend; FailGet and FailSet inject storage failures so callers
// can exercise their degradation paths.
type Store struct {
	mu     sync.Mutex
	values map[string][]byte

	// When non-nil, returned by every Get / Set.
	FailGet error
	FailSet error
}

// New returns an initialized empty store.
func New() *Store {
	return &Store{
		values: make(map[string][]byte),
	}
}

// Get fetches the value stored under key, or storage.ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailGet != nil {
		return nil, s.FailGet
	}
	value, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set overwrites the value stored under key.
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSet != nil {
		return s.FailSet
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

// Delete clears the slot. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// Contents returns a copy of the stored value for test assertions.
func (s *Store) Contents(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true
}
