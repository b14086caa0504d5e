// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package handlers

import (
	"net/http"

	"github.com/tallyhq/tally/cliparse"
	"github.com/tallyhq/tally/game"
	"github.com/tallyhq/tally/gamestore"
	"github.com/tallyhq/tally/middleware"
	"github.com/tallyhq/tally/models"
)

type BoardHandler struct {
	store *gamestore.Store
	cfg   cliparse.Config
}

func NewBoardHandler(store *gamestore.Store, cfg cliparse.Config) *BoardHandler {
	return &BoardHandler{store: store, cfg: cfg}
}

// GetState handles GET /game
// Returns the full state projection the display layer renders from.
func (h *BoardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.GameStateResponse{
		State: h.store.State(),
	})
}

// GetScoreboard handles GET /game/scoreboard
// Returns ranked standings; available at any point of the game, including
// before setup (empty standings) and mid-game.
func (h *BoardHandler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	state := h.store.State()

	middleware.JSONResponse(w, http.StatusOK, models.ScoreboardResponse{
		Standings:       game.Standings(state),
		CompletedRounds: state.CurrentRound,
		TotalRounds:     state.TotalRounds,
		IsGameSetup:     state.IsGameSetup,
	})
}
