// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

/*
Package main provides the entry point for the Tally API server.

Tally is the backend for a browser-based score tracker for zero-sum card
games: set up players and rounds with per-round multipliers, enter each
round's scores (the last blank field is derived automatically), and follow
a ranked scoreboard. State is persisted on every change and restored on
start.

# Starting the Server

The server reads configuration from CLI flags or environment variables
(a .env file is honored in development):

	RESET_TOKEN_SALT=... go run .

Or with flags:

	go run . -p 8231 -b sqlite -s tally.db --reset-salt dev

# Configuration

Required settings:

  - RESET_TOKEN_SALT (--reset-salt): secret for reset confirmation tokens

Optional settings:

  - PORT (-p): server port (default: 8231)
  - STORE_BACKEND (-b): bolt, sqlite, postgres, or memory (default: bolt)
  - STORE_PATH (-s): file path for bolt/sqlite (default: tally.db)
  - DATABASE_URL (-d): postgres connection string (postgres backend only)
  - STATE_KEY: storage slot key (default: "game")

# Architecture

The server uses a handler-based architecture with dependency injection:

  - game: pure rules core (setup validation, zero-sum reconciliation,
    scoreboard ranking)
  - gamestore: authoritative state, persisted on every transition
  - storage: key-value port with bolt, sql (sqlite/postgres), and memory
    backends
  - handlers: HTTP request handlers (setup, rounds, board, reset)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - auth: reset confirmation tokens
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
