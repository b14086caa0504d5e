// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package game

import "github.com/tallyhq/tally/models"

// ReconcileRound folds one round of raw score submissions into the game
// state: it resolves at most one blank entry from the zero-sum rule,
// applies the round's multiplier, recomputes totals, and advances the round
// counter by exactly one. It is a pure function; the input state is not
// mutated and no other round's data is touched.
func ReconcileRound(state models.GameState, raw []*int) (models.GameState, error) {
	if state.CurrentRound >= state.TotalRounds {
		return models.GameState{}, &StateError{"all rounds are already complete"}
	}
	if len(raw) != len(state.Players) {
		return models.GameState{}, &ValidationError{"one score per player required"}
	}

	resolved, err := DeriveMissing(raw)
	if err != nil {
		return models.GameState{}, err
	}

	next := state.Clone()
	round := next.CurrentRound
	multiplier := next.RoundMultipliers[round]
	for i := range next.Players {
		next.Players[i].Scores[round] = resolved[i] * multiplier
		next.Players[i].TotalScore = sum(next.Players[i].Scores)
	}
	next.CurrentRound++

	return next, nil
}

// DeriveMissing resolves a round's raw submissions against the zero-sum
// rule. A nil entry is a blank field: exactly one blank is computed as the
// negation of the sum of the rest, so the full set nets to zero by
// construction. With no blanks the entries must already sum to zero; with
// two or more blanks the round is ambiguous and every value must be
// supplied explicitly.
func DeriveMissing(raw []*int) ([]int, error) {
	resolved := make([]int, len(raw))
	blanks := 0
	blankAt := -1
	total := 0
	for i, v := range raw {
		if v == nil {
			blanks++
			blankAt = i
			continue
		}
		resolved[i] = *v
		total += *v
	}

	switch {
	case blanks > 1:
		return nil, &ValidationError{"all scores required when more than one field is blank"}
	case blanks == 1:
		resolved[blankAt] = -total
	default:
		if total != 0 {
			return nil, &ValidationError{"round total must equal zero"}
		}
	}

	return resolved, nil
}

// sum recomputes a player's total from scratch. Totals are never updated
// incrementally, so a stored total cannot drift from its scores.
func sum(scores []int) int {
	t := 0
	for _, s := range scores {
		t += s
	}
	return t
}
