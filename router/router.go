// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package router

import (
	"net/http"

	"github.com/tallyhq/tally/cliparse"
	"github.com/tallyhq/tally/gamestore"
	"github.com/tallyhq/tally/handlers"
	"github.com/tallyhq/tally/middleware"
)

func NewRouter(store *gamestore.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	setupHandler := handlers.NewSetupHandler(store, cfg)
	roundsHandler := handlers.NewRoundsHandler(store, cfg)
	boardHandler := handlers.NewBoardHandler(store, cfg)
	resetHandler := handlers.NewResetHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Game state and scoreboard (display layer)
	mux.HandleFunc("GET /game", middleware.WithLogging(boardHandler.GetState))
	mux.HandleFunc("GET /game/scoreboard", middleware.WithLogging(boardHandler.GetScoreboard))

	// Game transitions
	mux.HandleFunc("POST /game/setup", middleware.WithLogging(setupHandler.ApplySetup))
	mux.HandleFunc("POST /game/rounds", middleware.WithLogging(roundsHandler.SubmitRound))
	mux.HandleFunc("POST /game/rounds/preview", middleware.WithLogging(roundsHandler.PreviewRound))

	// Confirmed reset
	mux.HandleFunc("GET /game/reset-token", middleware.WithLogging(resetHandler.GetResetToken))
	mux.HandleFunc("DELETE /game", middleware.WithLogging(resetHandler.Reset))

	// Root endpoint; {$} keeps it from swallowing unknown paths
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tally API v1"))
	})

	return mux
}
