// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tallyhq/tally/auth"
	"github.com/tallyhq/tally/cliparse"
	"github.com/tallyhq/tally/gamestore"
	"github.com/tallyhq/tally/middleware"
	"github.com/tallyhq/tally/models"
)

type ResetHandler struct {
	store *gamestore.Store
	cfg   cliparse.Config
}

func NewResetHandler(store *gamestore.Store, cfg cliparse.Config) *ResetHandler {
	return &ResetHandler{store: store, cfg: cfg}
}

// GetResetToken handles GET /game/reset-token
// First step of the two-step reset: the client fetches the token, runs its
// confirmation UI, and presents the token on the DELETE.
func (h *ResetHandler) GetResetToken(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ResetTokenResponse{
		ResetToken: auth.GenerateResetToken(h.cfg.StateKey, h.cfg.ResetTokenSalt),
	})
}

// Reset handles DELETE /game
func (h *ResetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Reset-Token")
	if err := auth.ValidateResetToken(h.cfg.StateKey, token, h.cfg.ResetTokenSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid reset token")
		return
	}

	state, err := h.store.Reset()
	warning, err := persistWarningFrom(err)
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("game reset")

	middleware.JSONResponse(w, http.StatusOK, models.GameStateResponse{
		State:          state,
		PersistWarning: warning,
	})
}
