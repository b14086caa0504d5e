// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package gamestore

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/tallyhq/tally/game"
	"github.com/tallyhq/tally/models"
	"github.com/tallyhq/tally/storage"
)

// PersistenceError reports a storage failure. For writes the in-memory
// state has already advanced; the caller must warn the user that progress
// may not survive a restart.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "persist " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Store owns the single authoritative GameState. Every accepted transition
// is written to the storage slot before the new state is adopted, so the
// persisted blob and the in-memory value stay consistent. Operations are
// serialized with a mutex because net/http serves concurrently even though
// the game itself has one logical actor.
type Store struct {
	mu    sync.Mutex
	kv    storage.Store
	key   string
	state models.GameState
}

// New creates a store over the given storage backend and slot key. Call
// Initialize before use.
func New(kv storage.Store, key string) *Store {
	return &Store{
		kv:    kv,
		key:   key,
		state: models.EmptyGameState(),
	}
}

// Initialize restores the persisted state. Absence, unreadable storage,
// malformed JSON, and shape mismatches all degrade to the empty state; a
// saved game is adopted whole or not at all.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.EmptyGameState()

	payload, err := s.kv.Get(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		slog.Warn("saved game unreadable, starting empty", "key", s.key, "error", err)
		return
	}

	var restored models.GameState
	if err := json.Unmarshal(payload, &restored); err != nil {
		slog.Warn("saved game is malformed, starting empty", "key", s.key, "error", err)
		return
	}
	if !wellFormed(restored) {
		slog.Warn("saved game has an inconsistent shape, starting empty", "key", s.key)
		return
	}

	normalize(&restored)
	s.state = restored
	slog.Info("game state restored",
		"key", s.key,
		"players", len(restored.Players),
		"current_round", restored.CurrentRound,
		"total_rounds", restored.TotalRounds,
	)
}

// State returns a copy of the current state for read-only display.
func (s *Store) State() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// ApplySetup resolves and adopts the initial game state. A game may be set
// up exactly once; reset first to start over. On success the returned error
// is either nil or a *PersistenceError for a state that advanced in memory
// but could not be saved.
func (s *Store) ApplySetup(names []string, rounds int, multipliers []int) (models.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsGameSetup {
		return models.GameState{}, &game.StateError{Message: "game is already set up"}
	}

	next, err := game.ResolveSetup(names, rounds, multipliers)
	if err != nil {
		return models.GameState{}, err
	}

	perr := s.persist(next)
	s.state = next
	return next.Clone(), perr
}

// ApplyRoundScores reconciles one round of raw submissions and adopts the
// result. Error semantics match ApplySetup.
func (s *Store) ApplyRoundScores(raw []*int) (models.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsGameSetup {
		return models.GameState{}, &game.StateError{Message: "game is not set up"}
	}

	next, err := game.ReconcileRound(s.state, raw)
	if err != nil {
		return models.GameState{}, err
	}

	perr := s.persist(next)
	s.state = next
	return next.Clone(), perr
}

// Reset clears the persisted slot and restores the empty state. The caller
// is responsible for having confirmed the action with the user.
func (s *Store) Reset() (models.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var perr error
	if err := s.kv.Delete(s.key); err != nil {
		slog.Error("failed to clear saved game", "key", s.key, "error", err)
		perr = &PersistenceError{Op: "clear", Err: err}
	}

	s.state = models.EmptyGameState()
	return s.state.Clone(), perr
}

func (s *Store) persist(state models.GameState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.kv.Set(s.key, payload); err != nil {
		slog.Error("failed to persist game state", "key", s.key, "error", err)
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// wellFormed checks the structural invariants a restored blob must satisfy.
func wellFormed(state models.GameState) bool {
	if state.TotalRounds < 0 {
		return false
	}
	if state.CurrentRound < 0 || state.CurrentRound > state.TotalRounds {
		return false
	}
	if len(state.RoundMultipliers) != state.TotalRounds {
		return false
	}
	for _, m := range state.RoundMultipliers {
		if m < 1 {
			return false
		}
	}
	for _, p := range state.Players {
		if len(p.Scores) != state.TotalRounds {
			return false
		}
	}
	if state.IsGameSetup && (len(state.Players) < 2 || state.TotalRounds < 1) {
		return false
	}
	if !state.IsGameSetup && (len(state.Players) != 0 || state.TotalRounds != 0) {
		return false
	}
	return true
}

// normalize recomputes derived totals and replaces nil slices so the state
// always serializes with arrays.
func normalize(state *models.GameState) {
	if state.Players == nil {
		state.Players = []models.Player{}
	}
	if state.RoundMultipliers == nil {
		state.RoundMultipliers = []int{}
	}
	for i := range state.Players {
		total := 0
		for _, v := range state.Players[i].Scores {
			total += v
		}
		state.Players[i].TotalScore = total
	}
}
