// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

/*
Package gamestore holds the single point of truth for the live game state
and keeps it in sync with a storage slot.

Every accepted transition is persisted immediately - no batching, no
debounce - so state survives an unplanned restart. The write path is
optimistic: if storage fails, the in-memory state still advances and the
operation returns a *PersistenceError alongside the new state so the HTTP
layer can warn the user. Read failures at startup degrade silently to the
empty state.

	kv, _ := bolt.Open("tally.db")
	store := gamestore.New(kv, "game")
	store.Initialize()
	state, err := store.ApplySetup(names, rounds, multipliers)
*/
package gamestore
