// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tallyhq/tally/cliparse"
	"github.com/tallyhq/tally/game"
	"github.com/tallyhq/tally/gamestore"
	"github.com/tallyhq/tally/middleware"
	"github.com/tallyhq/tally/models"
)

// Input-layer guardrails. The game core independently enforces the hard
// minimums (2 players, 1 round); these bounds only keep the form sane.
const (
	maxPlayers = 10
	maxRounds  = 50
)

// allowedMultipliers is the fixed set the round multiplier picker offers.
var allowedMultipliers = []int{1, 2, 3, 5}

type SetupHandler struct {
	store *gamestore.Store
	cfg   cliparse.Config
}

func NewSetupHandler(store *gamestore.Store, cfg cliparse.Config) *SetupHandler {
	return &SetupHandler{store: store, cfg: cfg}
}

// ApplySetup handles POST /game/setup
func (h *SetupHandler) ApplySetup(w http.ResponseWriter, r *http.Request) {
	var req models.SetupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.PlayerNames) > maxPlayers {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("at most %d players supported", maxPlayers))
		return
	}
	if req.TotalRounds > maxRounds {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("at most %d rounds supported", maxRounds))
		return
	}
	for _, m := range req.RoundMultipliers {
		if !multiplierAllowed(m) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "multiplier must be one of 1, 2, 3, 5")
			return
		}
	}

	// Preserve entered multipliers across round-count changes; missing
	// rounds fall back to the default multiplier of 1.
	multipliers := game.Resize(req.RoundMultipliers, req.TotalRounds, 1)

	state, err := h.store.ApplySetup(req.PlayerNames, req.TotalRounds, multipliers)
	warning, err := persistWarningFrom(err)
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("game set up",
		"players", len(state.Players),
		"total_rounds", state.TotalRounds,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.GameStateResponse{
		State:          state,
		PersistWarning: warning,
	})
}

func multiplierAllowed(m int) bool {
	for _, allowed := range allowedMultipliers {
		if m == allowed {
			return true
		}
	}
	return false
}
