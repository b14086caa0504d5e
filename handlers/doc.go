// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

/*
Package handlers contains HTTP request handlers for the Tally API.

# Handler Types

Each handler is a struct with game store and config dependencies:

  - SetupHandler: game setup (players, rounds, multipliers)
  - RoundsHandler: round score submission and derivation preview
  - BoardHandler: state projection and ranked scoreboard
  - ResetHandler: two-step confirmed reset

Handlers are created via constructor functions that accept *gamestore.Store
and Config:

	setupHandler := handlers.NewSetupHandler(store, cfg)

# Game Lifecycle

The single game progresses: empty → set up → rounds 0..N-1 → complete

	POST /game/setup          → ApplySetup (once per game)
	POST /game/rounds         → SubmitRound (advances one round)
	POST /game/rounds/preview → PreviewRound (derivation, no state change)
	GET  /game                → GetState
	GET  /game/scoreboard     → GetScoreboard
	GET  /game/reset-token    → GetResetToken
	DELETE /game              → Reset (requires X-Reset-Token header)

# Error Mapping

game.ValidationError → 400, game.StateError → 409. A storage write failure
does not fail the request: the response succeeds and carries a
persist_warning field instead.

# Guardrails

The setup handler bounds player count to 10 and round count to 50 and
restricts multipliers to {1, 2, 3, 5}. These are form-level limits; the
game core re-validates the rules that actually matter.
*/
package handlers
