// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

/*
Package game implements the rules core of the score tracker: setup
resolution, round reconciliation, and the scoreboard projection. Everything
here is a pure function of its inputs; persistence and HTTP concerns live in
gamestore and handlers.

# Setup

	state, err := game.ResolveSetup([]string{"A", "B", "C"}, 2, []int{1, 2})

Validation stops at the first violation, in a fixed order, so the caller can
surface one actionable message at a time.

# Rounds

	next, err := game.ReconcileRound(state, raw)

Raw submissions are pointers; a nil entry marks a blank field. Exactly one
blank is derived as the negation of the sum of the rest, which guarantees
the zero-sum invariant automatically. The round's multiplier is applied
before the value is stored, so stored per-round sums need not be zero even
though raw submissions always are.

# Errors

ValidationError means the input broke a game rule and can be corrected by
the user. StateError means the operation is not legal in the current state
(for example, submitting scores after the final round) and indicates an
integration bug in the caller.
*/
package game
