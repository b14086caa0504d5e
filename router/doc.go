// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method patterns on
the standard ServeMux.

	mux := router.NewRouter(store, cfg)

All game routes are wrapped with request logging. CORS is applied once
around the whole mux by main.
*/
package router
