// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tallyhq/tally/cliparse"
	"github.com/tallyhq/tally/game"
	"github.com/tallyhq/tally/gamestore"
	"github.com/tallyhq/tally/middleware"
	"github.com/tallyhq/tally/models"
)

type RoundsHandler struct {
	store *gamestore.Store
	cfg   cliparse.Config
}

func NewRoundsHandler(store *gamestore.Store, cfg cliparse.Config) *RoundsHandler {
	return &RoundsHandler{store: store, cfg: cfg}
}

// SubmitRound handles POST /game/rounds
func (h *RoundsHandler) SubmitRound(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRoundRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Scores) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scores cannot be empty")
		return
	}

	state, err := h.store.ApplyRoundScores(req.Scores)
	warning, err := persistWarningFrom(err)
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("round recorded",
		"completed_rounds", state.CurrentRound,
		"total_rounds", state.TotalRounds,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.GameStateResponse{
		State:          state,
		PersistWarning: warning,
	})
}

// PreviewRound handles POST /game/rounds/preview
// Resolves the blank field without recording anything, so the form can show
// the derived value before the player commits the round.
func (h *RoundsHandler) PreviewRound(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRoundRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Scores) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scores cannot be empty")
		return
	}

	resolved, err := game.DeriveMissing(req.Scores)
	if err != nil {
		writeGameError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PreviewRoundResponse{
		Scores: resolved,
	})
}
