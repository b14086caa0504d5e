package models

// Storage backend constants
const (
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Domain types
//
// JSON field names double as the persisted blob layout, so renaming a tag
// invalidates every saved game.

type Player struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Scores     []int  `json:"scores"`
	TotalScore int    `json:"totalScore"`
}

type GameState struct {
	Players          []Player `json:"players"`
	CurrentRound     int      `json:"currentRound"`
	TotalRounds      int      `json:"totalRounds"`
	IsGameSetup      bool     `json:"isGameSetup"`
	RoundMultipliers []int    `json:"roundMultipliers"`
}

// EmptyGameState returns the pre-setup state. Slices are non-nil so the
// state serializes with empty arrays rather than nulls.
func EmptyGameState() GameState {
	return GameState{
		Players:          []Player{},
		RoundMultipliers: []int{},
	}
}

// Clone returns a deep copy. The game core hands copies across the API
// boundary so callers can never alias the authoritative state.
func (g GameState) Clone() GameState {
	next := g
	next.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		scores := make([]int, len(p.Scores))
		copy(scores, p.Scores)
		p.Scores = scores
		next.Players[i] = p
	}
	next.RoundMultipliers = make([]int, len(g.RoundMultipliers))
	copy(next.RoundMultipliers, g.RoundMultipliers)
	return next
}

// Request types

type SetupRequest struct {
	PlayerNames      []string `json:"player_names"`
	TotalRounds      int      `json:"total_rounds"`
	RoundMultipliers []int    `json:"round_multipliers"`
}

// A nil score marks a field the player left blank. Exactly one blank is
// derived from the zero-sum rule; a literal 0 is a real zero score.
type SubmitRoundRequest struct {
	Scores []*int `json:"scores"`
}

// Response types

type GameStateResponse struct {
	State GameState `json:"state"`
	// Set when the state advanced in memory but could not be saved.
	PersistWarning string `json:"persist_warning,omitempty"`
}

type PreviewRoundResponse struct {
	Scores []int `json:"scores"`
}

type Standing struct {
	Rank       int    `json:"rank"`
	PlayerID   int    `json:"id"`
	Name       string `json:"name"`
	TotalScore int    `json:"totalScore"`
}

type ScoreboardResponse struct {
	Standings       []Standing `json:"standings"`
	CompletedRounds int        `json:"completed_rounds"`
	TotalRounds     int        `json:"total_rounds"`
	IsGameSetup     bool       `json:"is_game_setup"`
}

type ResetTokenResponse struct {
	ResetToken string `json:"reset_token"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
