// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package game

import (
	"strings"

	"github.com/tallyhq/tally/models"
)

// ResolveSetup turns player names, a round count, and per-round multipliers
// into a validated initial game state. The check order is part of the
// contract: the first violation decides the user-facing message.
func ResolveSetup(names []string, rounds int, multipliers []int) (models.GameState, error) {
	if len(names) < 2 {
		return models.GameState{}, &ValidationError{"at least 2 players required"}
	}
	if rounds < 1 {
		return models.GameState{}, &ValidationError{"at least 1 round required"}
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return models.GameState{}, &ValidationError{"all player names required"}
		}
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return models.GameState{}, &ValidationError{"player names must be unique"}
		}
		seen[name] = true
	}
	if len(multipliers) != rounds {
		return models.GameState{}, &ValidationError{"one multiplier per round required"}
	}
	for _, m := range multipliers {
		if m < 1 {
			return models.GameState{}, &ValidationError{"multipliers must be positive"}
		}
	}

	players := make([]models.Player, len(names))
	for i, name := range names {
		players[i] = models.Player{
			ID:     i,
			Name:   name,
			Scores: make([]int, rounds),
		}
	}

	ms := make([]int, rounds)
	copy(ms, multipliers)

	return models.GameState{
		Players:          players,
		CurrentRound:     0,
		TotalRounds:      rounds,
		IsGameSetup:      true,
		RoundMultipliers: ms,
	}, nil
}
