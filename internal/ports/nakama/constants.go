package nakama

const (
	// MatchNameDominoes is the authoritative match handler name registered with Nakama.
	MatchNameDominoes = "dominoes_match"

	gameName = "dominoes"

	// gameConfigPath is read once per process, relative to the Nakama data dir.
	gameConfigPath = "data/game_config.json"
)

// Runtime env keys that override the game config for every match.
const (
	envBotsEnabled = "dominoes_bots_enabled"
	envBotMinDelay = "dominoes_bot_min_delay_ms"
	envBotMaxDelay = "dominoes_bot_max_delay_ms"
	envDefaultRule = "dominoes_default_rule"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpPlaceTile int64 = 2
	OpDrawTile  int64 = 3
	OpPassTurn  int64 = 4
	OpNewRound  int64 = 5

	// Server -> Client events
	OpPlayerJoined int64 = 101
	OpRoundStarted int64 = 102
	OpHandDealt    int64 = 103 // send privately
	OpTilePlaced   int64 = 104
	OpTilesDrawn   int64 = 105
	OpTurnPassed   int64 = 106
	OpScoreAwarded int64 = 107
	OpRoundEnded   int64 = 108
	OpMatchEnded   int64 = 109
	OpGameError    int64 = 110
)

// Error codes carried by OpGameError.
const (
	errCodeBadRequest = 400
	errCodeForbidden  = 403
	errCodeConflict   = 409
)
