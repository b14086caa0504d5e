// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package storage

import "errors"

// ErrNotFound indicates the requested slot holds no value.
var ErrNotFound = errors.New("record not found")

// Store persists opaque blobs under string keys. Writes overwrite the whole
// value; callers never see a partially written blob. Implementations must
// not assume transactional semantics across a Get/Set pair.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
