// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package game

import (
	"sort"

	"github.com/tallyhq/tally/models"
)

// Standings projects the game state into a ranked scoreboard. Players sort
// by total score descending; equal totals share a rank (competition
// ranking) and order among themselves by ascending player ID for stability.
func Standings(state models.GameState) []models.Standing {
	standings := make([]models.Standing, len(state.Players))
	for i, p := range state.Players {
		standings[i] = models.Standing{
			PlayerID:   p.ID,
			Name:       p.Name,
			TotalScore: p.TotalScore,
		}
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]

		// Higher total wins
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}

		// Stable tie-breaking by player ID (ascending)
		return a.PlayerID < b.PlayerID
	})

	for i := range standings {
		if i > 0 && standings[i].TotalScore == standings[i-1].TotalScore {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}

	return standings
}
