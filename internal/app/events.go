package app

import "dominoes/internal/domain"

// EventKind identifies emitted domain events for dispatch to clients.
type EventKind string

const (
	EventRoundStarted EventKind = "round_started"
	EventHandDealt    EventKind = "hand_dealt"
	EventTilePlaced   EventKind = "tile_placed"
	EventTilesDrawn   EventKind = "tiles_drawn"
	EventTurnPassed   EventKind = "turn_passed"
	EventScoreAwarded EventKind = "score_awarded"
	EventRoundEnded   EventKind = "round_ended"
	EventMatchEnded   EventKind = "match_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seats; empty means broadcast
}

type RoundStartedPayload struct {
	Round       int             `json:"round"`
	Rule        domain.RuleType `json:"rule"`
	PlayerCount int             `json:"player_count"`
	FirstTurn   int             `json:"first_turn"`
	PoolSize    int             `json:"pool_size"`
	Scores      []int           `json:"scores"`
	AISeats     []int           `json:"ai_seats"`
}

type HandDealtPayload struct {
	Seat int           `json:"seat"`
	Hand []domain.Tile `json:"hand"`
}

type TilePlacedPayload struct {
	Seat     int          `json:"seat"`
	Tile     domain.Tile  `json:"tile"`
	Side     domain.Side  `json:"side"`
	Ends     domain.Ends  `json:"ends"`
	HandSize int          `json:"hand_size"`
	NextTurn int          `json:"next_turn"`
	Board    domain.Board `json:"board"`
}

type TilesDrawnPayload struct {
	Seat          int `json:"seat"`
	Count         int `json:"count"`
	PoolRemaining int `json:"pool_remaining"`
}

type TurnPassedPayload struct {
	Seat        int  `json:"seat"`
	Auto        bool `json:"auto"`
	PassCounter int  `json:"pass_counter"`
	NextTurn    int  `json:"next_turn"`
}

type ScoreAwardedPayload struct {
	Seat   int `json:"seat"`
	Points int `json:"points"`
	Total  int `json:"total"`
}

type RoundEndedPayload struct {
	Round  int                `json:"round"`
	Result domain.RoundResult `json:"result"`
	Scores []int              `json:"scores"`
}

type MatchEndedPayload struct {
	Scores []int `json:"scores"`
	// Leader is the seat with the highest score, or 0 on a tie.
	Leader int `json:"leader"`
}
