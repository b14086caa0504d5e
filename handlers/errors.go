// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tallyhq/tally/game"
	"github.com/tallyhq/tally/gamestore"
	"github.com/tallyhq/tally/middleware"
)

// PersistWarning is attached to responses whose transition succeeded in
// memory but could not be written to storage.
const PersistWarning = "progress could not be saved and may not survive a restart"

// writeGameError maps core errors onto HTTP statuses: validation failures
// are the user's to fix (400), state violations mean the client drove the
// lifecycle wrong (409), anything else is a server fault.
func writeGameError(w http.ResponseWriter, err error) {
	var verr *game.ValidationError
	var serr *game.StateError

	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
	case errors.As(err, &serr):
		middleware.ErrorResponse(w, http.StatusConflict, serr.Message)
	default:
		slog.Error("unexpected game error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unexpected error")
	}
}

// persistWarningFrom splits a gamestore result error into a warning string
// and a remaining hard error. A *PersistenceError means the operation
// succeeded; everything else is surfaced unchanged.
func persistWarningFrom(err error) (warning string, hard error) {
	if err == nil {
		return "", nil
	}
	var perr *gamestore.PersistenceError
	if errors.As(err, &perr) {
		slog.Warn("state advanced but was not persisted", "error", perr)
		return PersistWarning, nil
	}
	return "", err
}
