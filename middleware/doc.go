// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers:

  - WithLogging: request start/completion logging with request IDs
  - JSONResponse / ErrorResponse: consistent JSON envelopes
  - ParseJSONBody: request body decoding
  - CORS: cross-origin support for the browser frontend

Handlers are wrapped at route registration time:

	mux.HandleFunc("POST /game/setup", middleware.WithLogging(h.ApplySetup))
*/
package middleware
