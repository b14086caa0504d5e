// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package game

// ValidationError reports user input that violates a game rule. The caller
// redisplays its message next to the offending form; no state changes.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StateError reports an operation invoked in a state that does not permit
// it, such as submitting scores after the final round. The surrounding
// layer should never reach this; the core refuses rather than corrupt data.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}
