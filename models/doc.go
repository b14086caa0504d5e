// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

/*
Package models defines the domain, request, and response types shared by the
game core, the state store, and the HTTP handlers.

# Domain Types

GameState is the single authoritative value the whole service revolves
around. Its JSON tags are also the persisted blob layout:

	{
	  "players": [{"id": 0, "name": "A", "scores": [5, 20], "totalScore": 25}],
	  "currentRound": 2,
	  "totalRounds": 2,
	  "isGameSetup": true,
	  "roundMultipliers": [1, 2]
	}

There is no version field. A blob that does not match this shape is treated
as absent on restore.

# Blank Scores

SubmitRoundRequest carries scores as pointers: JSON null marks a field the
player left blank, which is distinct from an explicit 0. At most one blank
may be derived from the zero-sum rule.
*/
package models
