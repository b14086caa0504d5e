package gamestore

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/tallyhq/tally/game"
	"github.com/tallyhq/tally/models"
	"github.com/tallyhq/tally/storage/memory"
)

const testKey = "game"

func ptr(v int) *int {
	return &v
}

func newStore(t *testing.T) (*Store, *memory.Store) {
	t.Helper()
	kv := memory.New()
	s := New(kv, testKey)
	s.Initialize()
	return s, kv
}

func TestInitializeEmptySlot(t *testing.T) {
	s, _ := newStore(t)

	state := s.State()
	if state.IsGameSetup {
		t.Error("Expected a fresh slot to start not set up")
	}
	if len(state.Players) != 0 || state.TotalRounds != 0 || state.CurrentRound != 0 {
		t.Errorf("Expected empty state, got %+v", state)
	}
	if state.Players == nil || state.RoundMultipliers == nil {
		t.Error("Empty state must serialize with arrays, not nulls")
	}
}

func TestInitializeMalformedBlob(t *testing.T) {
	kv := memory.New()
	if err := kv.Set(testKey, []byte("{not json")); err != nil {
		t.Fatalf("Failed to seed slot: %v", err)
	}

	s := New(kv, testKey)
	s.Initialize()

	if s.State().IsGameSetup {
		t.Error("Malformed blob must degrade to the empty state")
	}
}

func TestInitializeShapeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		state models.GameState
	}{
		{
			name: "multiplier count mismatch",
			state: models.GameState{
				Players: []models.Player{
					{ID: 0, Name: "A", Scores: []int{0, 0}},
					{ID: 1, Name: "B", Scores: []int{0, 0}},
				},
				TotalRounds:      2,
				IsGameSetup:      true,
				RoundMultipliers: []int{1},
			},
		},
		{
			name: "score slots mismatch",
			state: models.GameState{
				Players: []models.Player{
					{ID: 0, Name: "A", Scores: []int{0}},
					{ID: 1, Name: "B", Scores: []int{0, 0}},
				},
				TotalRounds:      2,
				IsGameSetup:      true,
				RoundMultipliers: []int{1, 1},
			},
		},
		{
			name: "current round beyond total",
			state: models.GameState{
				Players: []models.Player{
					{ID: 0, Name: "A", Scores: []int{0}},
					{ID: 1, Name: "B", Scores: []int{0}},
				},
				CurrentRound:     2,
				TotalRounds:      1,
				IsGameSetup:      true,
				RoundMultipliers: []int{1},
			},
		},
		{
			name: "set up with one player",
			state: models.GameState{
				Players:          []models.Player{{ID: 0, Name: "A", Scores: []int{0}}},
				TotalRounds:      1,
				IsGameSetup:      true,
				RoundMultipliers: []int{1},
			},
		},
		{
			name: "players without setup flag",
			state: models.GameState{
				Players: []models.Player{
					{ID: 0, Name: "A", Scores: []int{}},
					{ID: 1, Name: "B", Scores: []int{}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := memory.New()
			payload, err := json.Marshal(tt.state)
			if err != nil {
				t.Fatalf("Failed to marshal seed state: %v", err)
			}
			if err := kv.Set(testKey, payload); err != nil {
				t.Fatalf("Failed to seed slot: %v", err)
			}

			s := New(kv, testKey)
			s.Initialize()

			if got := s.State(); got.IsGameSetup || len(got.Players) != 0 {
				t.Errorf("Shape mismatch must be treated as absent, got %+v", got)
			}
		})
	}
}

func TestPersistRestoreRoundtrip(t *testing.T) {
	s, kv := newStore(t)

	if _, err := s.ApplySetup([]string{"A", "B", "C"}, 2, []int{1, 2}); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if _, err := s.ApplyRoundScores([]*int{ptr(5), ptr(-2), ptr(-3)}); err != nil {
		t.Fatalf("Round failed: %v", err)
	}
	want := s.State()

	// Fresh load over the same storage simulates a restart
	restored := New(kv, testKey)
	restored.Initialize()

	if got := restored.State(); !reflect.DeepEqual(got, want) {
		t.Errorf("Restored state differs.\nwant %+v\ngot  %+v", want, got)
	}
}

func TestRestoreRecomputesTotals(t *testing.T) {
	state, err := game.ResolveSetup([]string{"A", "B"}, 1, []int{1})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	state.Players[0].Scores[0] = 7
	state.Players[1].Scores[0] = -7
	state.Players[0].TotalScore = 999 // drifted cache
	state.CurrentRound = 1

	kv := memory.New()
	payload, _ := json.Marshal(state)
	if err := kv.Set(testKey, payload); err != nil {
		t.Fatalf("Failed to seed slot: %v", err)
	}

	s := New(kv, testKey)
	s.Initialize()

	if got := s.State().Players[0].TotalScore; got != 7 {
		t.Errorf("Expected total recomputed to 7, got %d", got)
	}
}

func TestApplySetupPersistsImmediately(t *testing.T) {
	s, kv := newStore(t)

	state, err := s.ApplySetup([]string{"A", "B"}, 1, []int{1})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	payload, ok := kv.Contents(testKey)
	if !ok {
		t.Fatal("Setup was not persisted")
	}
	var persisted models.GameState
	if err := json.Unmarshal(payload, &persisted); err != nil {
		t.Fatalf("Persisted blob is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(persisted, state) {
		t.Errorf("Persisted blob differs from adopted state.\nwant %+v\ngot  %+v", state, persisted)
	}
}

func TestApplySetupRejectsSecondSetup(t *testing.T) {
	s, _ := newStore(t)

	if _, err := s.ApplySetup([]string{"A", "B"}, 1, []int{1}); err != nil {
		t.Fatalf("First setup failed: %v", err)
	}

	_, err := s.ApplySetup([]string{"C", "D"}, 1, []int{1})
	var serr *game.StateError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected *game.StateError, got %T: %v", err, err)
	}
}

func TestApplySetupValidationLeavesStateUntouched(t *testing.T) {
	s, kv := newStore(t)

	_, err := s.ApplySetup([]string{"A"}, 1, []int{1})
	var verr *game.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *game.ValidationError, got %T: %v", err, err)
	}

	if s.State().IsGameSetup {
		t.Error("Failed setup must not mutate state")
	}
	if _, ok := kv.Contents(testKey); ok {
		t.Error("Failed setup must not write storage")
	}
}

func TestApplyRoundScoresMonotonicity(t *testing.T) {
	s, _ := newStore(t)
	if _, err := s.ApplySetup([]string{"A", "B"}, 2, []int{1, 1}); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	// Failure never advances
	if _, err := s.ApplyRoundScores([]*int{ptr(3), ptr(-2)}); err == nil {
		t.Fatal("Expected zero-sum rejection")
	}
	if got := s.State().CurrentRound; got != 0 {
		t.Errorf("Failed submission advanced the round to %d", got)
	}

	// Success advances by exactly one
	if _, err := s.ApplyRoundScores([]*int{ptr(3), ptr(-3)}); err != nil {
		t.Fatalf("Round failed: %v", err)
	}
	if got := s.State().CurrentRound; got != 1 {
		t.Errorf("Expected currentRound 1, got %d", got)
	}
}

func TestApplyRoundScoresBeforeSetup(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.ApplyRoundScores([]*int{ptr(1), ptr(-1)})
	var serr *game.StateError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected *game.StateError, got %T: %v", err, err)
	}
}

func TestWriteFailureAdvancesWithWarning(t *testing.T) {
	s, kv := newStore(t)
	if _, err := s.ApplySetup([]string{"A", "B"}, 1, []int{1}); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	kv.FailSet = errors.New("disk full")
	state, err := s.ApplyRoundScores([]*int{ptr(4), ptr(-4)})

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *PersistenceError, got %T: %v", err, err)
	}
	if state.CurrentRound != 1 {
		t.Errorf("Optimistic write must still advance; currentRound = %d", state.CurrentRound)
	}
	if s.State().CurrentRound != 1 {
		t.Error("In-memory state did not adopt the transition")
	}
}

func TestReset(t *testing.T) {
	s, kv := newStore(t)
	if _, err := s.ApplySetup([]string{"A", "B"}, 1, []int{1}); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	state, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	if state.IsGameSetup || len(state.Players) != 0 {
		t.Errorf("Expected empty state after reset, got %+v", state)
	}
	if _, ok := kv.Contents(testKey); ok {
		t.Error("Reset must clear the persisted slot")
	}

	// A reset game can be set up again
	if _, err := s.ApplySetup([]string{"C", "D"}, 1, []int{1}); err != nil {
		t.Fatalf("Setup after reset failed: %v", err)
	}
}

func TestStateReturnsCopy(t *testing.T) {
	s, _ := newStore(t)
	if _, err := s.ApplySetup([]string{"A", "B"}, 1, []int{1}); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	projection := s.State()
	projection.Players[0].Scores[0] = 42
	projection.Players[0].Name = "tampered"

	state := s.State()
	if state.Players[0].Scores[0] != 0 || state.Players[0].Name != "A" {
		t.Error("State projection aliases the authoritative state")
	}
}
