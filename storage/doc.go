// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

/*
Package storage defines the key-value port the game state store persists
through, plus ErrNotFound for empty slots.

Backends live in subpackages:

  - bolt: bbolt single-file store, the default
  - sqlstore: one KV table over database/sql (sqlite or postgres driver)
  - memory: in-process map with failure injection, for tests

All backends write whole values, so a crash mid-operation leaves the
previous blob intact rather than a torn one.
*/
package storage
