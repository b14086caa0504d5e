// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tallyhq/tally/cliparse"
	"github.com/tallyhq/tally/gamestore"
	"github.com/tallyhq/tally/storage/memory"
)

// NewTestStore returns an initialized game store over in-memory storage,
// plus the backing store for failure injection and write assertions.
func NewTestStore(t *testing.T) (*gamestore.Store, *memory.Store) {
	t.Helper()

	kv := memory.New()
	store := gamestore.New(kv, GetTestConfig().StateKey)
	store.Initialize()
	return store, kv
}

// RestoreTestStore builds a fresh game store over existing storage, as a
// process restart would.
func RestoreTestStore(t *testing.T, kv *memory.Store) *gamestore.Store {
	t.Helper()

	store := gamestore.New(kv, GetTestConfig().StateKey)
	store.Initialize()
	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8231,
		StoreBackend:   "memory",
		StateKey:       "game",
		ResetTokenSalt: "test-reset-salt",
	}
}

// SetupTestGame applies a setup and fails the test on rejection.
func SetupTestGame(t *testing.T, store *gamestore.Store, names []string, rounds int, multipliers []int) {
	t.Helper()

	if _, err := store.ApplySetup(names, rounds, multipliers); err != nil {
		t.Fatalf("Failed to set up test game: %v", err)
	}
}

// SubmitTestRound records one round of raw scores and fails the test on
// rejection.
func SubmitTestRound(t *testing.T, store *gamestore.Store, raw []int) {
	t.Helper()

	scores := make([]*int, len(raw))
	for i := range raw {
		scores[i] = &raw[i]
	}
	if _, err := store.ApplyRoundScores(scores); err != nil {
		t.Fatalf("Failed to submit test round: %v", err)
	}
}

// Ptr returns a pointer to v.
func Ptr(v int) *int {
	return &v
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
