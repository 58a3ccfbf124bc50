package nakama

// StartGameRequest is sent by the match owner. Empty fields fall back to the
// match defaults.
type StartGameRequest struct {
	Rule  string `json:"rule"`
	Seats int    `json:"seats"`
}

type PlaceTileRequest struct {
	TileIndex int    `json:"tile_index"`
	Side      string `json:"side"`
}

type PlayerState struct {
	UserID         string `json:"user_id"`
	Seat           int    `json:"seat"`
	IsOwner        bool   `json:"is_owner"`
	IsBot          bool   `json:"is_bot"`
	DisplayName    string `json:"display_name"`
	TilesRemaining int    `json:"tiles_remaining"`
	Score          int    `json:"score"`
}

// MatchStateSnapshot is broadcast whenever seating changes.
type MatchStateSnapshot struct {
	Seats     []string      `json:"seats"`
	OwnerSeat int           `json:"owner_seat"`
	Tick      int64         `json:"tick"`
	Phase     string        `json:"phase"`
	Players   []PlayerState `json:"players"`
}

type GameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
