package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"dominoes/internal/app"
	"dominoes/internal/bot"
	"dominoes/internal/config"
	"dominoes/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	MatchLabelKey_Open      = "open"       // Whether the lobby accepts joins
	MatchLabelKey_OpenSeats = "open_seats" // Number of free seats
	phaseLobby              = "lobby"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
// Seats[i] holds the user seated at engine seat i+1 once a game has started.
type MatchState struct {
	Seats            [domain.MaxSeats]string     `json:"seats"`               // User IDs, empty string means seat is empty
	OwnerSeat        int                         `json:"owner_seat"`          // Seat index of the match owner
	Tick             int64                       `json:"tick"`                // Current tick of the match
	Presences        map[string]runtime.Presence `json:"-"`                   // UserId -> Presence for targeted messaging
	App              *app.Service                `json:"-"`                   // Session controller holding the game
	Bots             map[string]*bot.Agent       `json:"-"`                   // Active bot agents by user ID
	BotsEnabled      bool                        `json:"bots_enabled"`        // Whether a lone human plays against bots
	DefaultRule      domain.RuleType             `json:"default_rule"`        // Rule used when the start request names none
	DefaultSeats     int                         `json:"default_seats"`       // Table size for games against bots
	BotMinDelayTicks int64                       `json:"bot_min_delay_ticks"` // Min ticks a bot waits
	BotMaxDelayTicks int64                       `json:"bot_max_delay_ticks"` // Max ticks a bot waits
	BotWaitUntil     int64                       `json:"bot_wait_until"`      // Tick when the bot should act

	rng *rand.Rand
}

func newMatchState(cfg config.GameConfig, rng *rand.Rand, logger runtime.Logger) *MatchState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rule, err := domain.ParseRuleType(cfg.DefaultRule)
	if err != nil {
		rule = domain.RuleClassic
	}
	ms := &MatchState{
		OwnerSeat:        -1,
		Presences:        make(map[string]runtime.Presence),
		Bots:             make(map[string]*bot.Agent),
		BotsEnabled:      cfg.BotsEnabled,
		DefaultRule:      rule,
		DefaultSeats:     cfg.PlayerCount,
		BotMinDelayTicks: msToTicks(cfg.BotMinDelayMs, cfg.TickRate),
		BotMaxDelayTicks: msToTicks(cfg.BotMaxDelayMs, cfg.TickRate),
		rng:              rng,
	}
	ms.App = app.NewService(rng, agentRouter{state: ms}, logger)
	return ms
}

// msToTicks converts a delay to whole match ticks, rounding up, never below one.
func msToTicks(ms, tickRate int) int64 {
	ticks := (int64(ms)*int64(tickRate) + 999) / 1000
	if ticks < 1 {
		return 1
	}
	return ticks
}

// agentRouter hands each bot seat's decision to the agent sitting there.
type agentRouter struct {
	state *MatchState
}

func (r agentRouter) CalculateMove(state domain.GameState, seat int) (bot.Move, error) {
	if seat < 1 || seat > domain.MaxSeats {
		return bot.Move{}, fmt.Errorf("no agent for seat %d", seat)
	}
	agent, ok := r.state.Bots[r.state.Seats[seat-1]]
	if !ok {
		return bot.Move{}, fmt.Errorf("no agent for seat %d", seat)
	}
	return agent.PlayAtSeat(state, seat)
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanUserIDs() []string {
	var humans []string
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			humans = append(humans, seat)
		}
	}
	return humans
}

// GameActive reports whether a match of dominoes is being played.
func (ms *MatchState) GameActive() bool {
	return ms.App.Started() && !ms.App.State().MatchOver
}

// Phase is the label phase: lobby until the first deal, then the engine phase.
func (ms *MatchState) Phase() string {
	if !ms.App.Started() {
		return phaseLobby
	}
	return string(ms.App.State().Phase())
}

// seatOf returns the engine seat (1-based) of the user, or 0.
func (ms *MatchState) seatOf(userID string) int {
	for i, seatUserId := range ms.Seats {
		if seatUserId != "" && seatUserId == userID {
			return i + 1
		}
	}
	return 0
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := applyRuntimeEnv(ctx, config.GetGameConfig(), logger)

	state := newMatchState(cfg, nil, logger)

	label, err := matchLabel(state)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	return state, cfg.TickRate, label
}

// applyRuntimeEnv overlays Nakama runtime env values on the loaded config.
func applyRuntimeEnv(ctx context.Context, cfg config.GameConfig, logger runtime.Logger) config.GameConfig {
	env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if !ok {
		return cfg
	}
	next := cfg
	if val, ok := env[envBotsEnabled]; ok {
		next.BotsEnabled = val == "true"
	}
	if val, ok := env[envBotMinDelay]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			next.BotMinDelayMs = i
		}
	}
	if val, ok := env[envBotMaxDelay]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			next.BotMaxDelayMs = i
		}
	}
	if val, ok := env[envDefaultRule]; ok {
		next.DefaultRule = val
	}
	if err := next.Validate(); err != nil {
		logger.Warn("MatchInit: Ignoring runtime env overrides: %v", err)
		return cfg
	}
	return next
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}
	accept, reason := matchState.canJoin(presence.GetUserId())
	return state, accept, reason
}

// canJoin admits seated users back at any time and newcomers only between
// games, into an empty seat or one held by a bot.
func (ms *MatchState) canJoin(userID string) (bool, string) {
	if ms.seatOf(userID) > 0 {
		return true, ""
	}
	if ms.GameActive() {
		return false, "Game in progress"
	}
	if ms.GetOpenSeatsCount() > 0 {
		return true, ""
	}
	for _, seat := range ms.Seats {
		if isBotUserId(seat) {
			return true, ""
		}
	}
	return false, "Match full"
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		if !matchState.seatUser(p.GetUserId(), logger) {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)
	return matchState
}

// seatUser gives the user a seat: their old one, an empty one, or one held by
// a bot between games. The owner is always a human.
func (ms *MatchState) seatUser(userID string, logger runtime.Logger) bool {
	assigned := ms.seatOf(userID) > 0
	if !assigned {
		for i, seatUserId := range ms.Seats {
			if seatUserId == "" {
				ms.Seats[i] = userID
				assigned = true
				break
			}
		}
	}
	if !assigned && !ms.GameActive() {
		for i, seatUserId := range ms.Seats {
			if isBotUserId(seatUserId) {
				logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, userID, i)
				delete(ms.Bots, seatUserId)
				ms.Seats[i] = userID
				assigned = true
				break
			}
		}
	}

	if !isHumanSeat(ms.Seats[:], ms.OwnerSeat) {
		ms.OwnerSeat = findFirstHumanSeat(ms.Seats[:])
		if ms.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", ms.OwnerSeat)
		}
	}
	return assigned
}

// MatchLeave is called when one or more players leave the match. Seats are
// held for the rest of a game so the player can reconnect.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		if matchState.GameActive() {
			continue
		}
		if seat := matchState.seatOf(p.GetUserId()); seat > 0 {
			matchState.Seats[seat-1] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seat-1)
		}
	}

	if len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: Terminating match with no connected players.")
		return nil
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg.GetUserId(), msg.GetData())
		case OpPlaceTile:
			mh.handlePlaceTile(matchState, dispatcher, logger, msg.GetUserId(), msg.GetData())
		case OpDrawTile:
			mh.handleDrawTile(matchState, dispatcher, logger, msg.GetUserId())
		case OpPassTurn:
			mh.handlePassTurn(matchState, dispatcher, logger, msg.GetUserId())
		case OpNewRound:
			mh.handleNewRound(matchState, dispatcher, logger, msg.GetUserId())
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.processBots(matchState, dispatcher, logger)
	return matchState
}

// processBots arms a random delay when a bot seat is to act and plays the
// turn once the tick deadline passes.
func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if !state.App.BotPending() {
		state.BotWaitUntil = 0
		return
	}

	seat := state.App.State().CurrentPlayer
	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelayTicks
		if span := state.BotMaxDelayTicks - state.BotMinDelayTicks; span > 0 {
			delay += state.rng.Int63n(span + 1)
		}
		state.BotWaitUntil = state.Tick + delay
		logger.Debug("processBots: Bot %s (seat %d) will act at tick %d (current %d)", state.Seats[seat-1], seat, state.BotWaitUntil, state.Tick)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	events, err := state.App.PlayBotTurn()
	if err != nil {
		logger.Error("processBots: Bot %s failed to act: %v", state.Seats[seat-1], err)
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string, data []byte) {
	senderSeat := state.seatOf(senderID) - 1
	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d)", senderID, senderSeat, state.OwnerSeat)

	request := StartGameRequest{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &request); err != nil {
			logger.Warn("StartGame: Invalid StartGameRequest from %s: %v", senderID, err)
			mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, "invalid start request")
			return
		}
	}

	if senderSeat < 0 || senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, errCodeForbidden, "only the match owner can start")
		return
	}
	if state.GameActive() {
		mh.sendError(state, dispatcher, logger, senderID, errCodeConflict, "game already in progress")
		return
	}

	rule := state.DefaultRule
	if request.Rule != "" {
		parsed, err := domain.ParseRuleType(request.Rule)
		if err != nil {
			mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
			return
		}
		rule = parsed
	}

	seats, bots, err := state.planSeats(request.Seats)
	if err != nil {
		logger.Warn("StartGame: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}
	aiEnabled := len(bots) > 0

	state.Seats = seats
	state.Bots = bots
	state.OwnerSeat = findFirstHumanSeat(state.Seats[:])
	state.BotWaitUntil = 0

	players := len(state.GetHumanUserIDs()) + len(bots)
	events, err := state.App.NewGame(rule, aiEnabled, players)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}

	mh.broadcastMatchState(state, dispatcher, logger)
	mh.broadcastEvents(state, dispatcher, logger, events)
	logger.Info("StartGame: %s game started with %d players (bots=%d).", rule, players, len(bots))
}

// planSeats packs the seated humans into engine seat order. A lone human
// plays seat 1 against fresh bots when bots are enabled.
func (ms *MatchState) planSeats(requested int) ([domain.MaxSeats]string, map[string]*bot.Agent, error) {
	var seats [domain.MaxSeats]string
	bots := make(map[string]*bot.Agent)
	humans := ms.GetHumanUserIDs()

	if ms.BotsEnabled && len(humans) == 1 {
		total := requested
		if total == 0 {
			total = ms.DefaultSeats
		}
		if total < domain.MinSeats || total > domain.MaxSeats {
			return seats, nil, fmt.Errorf("%w: %d", domain.ErrInvalidPlayerCount, total)
		}
		seats[0] = humans[0]
		for i := 1; i < total; i++ {
			agent, err := bot.NewAgent(i + 1)
			if err != nil {
				return seats, nil, fmt.Errorf("create bot agent: %w", err)
			}
			seats[i] = agent.ID
			bots[agent.ID] = agent
		}
		return seats, bots, nil
	}

	if len(humans) < domain.MinSeats {
		return seats, nil, fmt.Errorf("need at least %d players, have %d", domain.MinSeats, len(humans))
	}
	copy(seats[:], humans)
	return seats, bots, nil
}

func (mh *matchHandler) handlePlaceTile(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string, data []byte) {
	request := PlaceTileRequest{}
	if err := json.Unmarshal(data, &request); err != nil {
		logger.Error("handlePlaceTile: Failed to unmarshal PlaceTileRequest: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, "invalid place request")
		return
	}
	side, ok := domain.ParseSide(request.Side)
	if !ok {
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, fmt.Sprintf("unknown side %q", request.Side))
		return
	}

	seat := state.seatOf(senderID)
	events, err := state.App.PlaceTile(seat, request.TileIndex, side)
	if err != nil {
		logger.Warn("handlePlaceTile: User %s (seat %d) failed to place tile %d on %s: %v. Hand: %v", senderID, seat, request.TileIndex, side, err, state.App.State().Hand(seat))
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleDrawTile(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	seat := state.seatOf(senderID)
	events, err := state.App.DrawTile(seat)
	if err != nil {
		logger.Warn("handleDrawTile: User %s (seat %d) failed to draw: %v", senderID, seat, err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePassTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	seat := state.seatOf(senderID)
	events, err := state.App.PassTurn(seat)
	if err != nil {
		logger.Warn("handlePassTurn: User %s (seat %d) failed to pass turn: %v", senderID, seat, err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleNewRound(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	if state.seatOf(senderID)-1 != state.OwnerSeat {
		mh.sendError(state, dispatcher, logger, senderID, errCodeForbidden, "only the match owner can deal")
		return
	}
	events, err := state.App.NewRound()
	if err != nil {
		logger.Warn("handleNewRound: User %s failed to deal a new round: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeConflict, err.Error())
		return
	}
	state.BotWaitUntil = 0
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	game := state.App.State()
	var players []PlayerState
	for i, userId := range state.Seats {
		if userId == "" {
			continue
		}

		displayName := userId
		if p, exists := state.Presences[userId]; exists {
			displayName = p.GetUsername()
		} else if agent, exists := state.Bots[userId]; exists {
			displayName = agent.Name
		}

		players = append(players, PlayerState{
			UserID:         userId,
			Seat:           i,
			IsOwner:        i == state.OwnerSeat,
			IsBot:          isBotUserId(userId),
			DisplayName:    displayName,
			TilesRemaining: len(game.Hand(i + 1)),
			Score:          game.Score(i + 1),
		})
	}

	snapshot := MatchStateSnapshot{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Tick:      state.Tick,
		Phase:     state.Phase(),
		Players:   players,
	}
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastMatchState: Failed to marshal snapshot: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpPlayerJoined, bytes, nil, nil, true); err != nil {
		logger.Error("broadcastMatchState: Failed to broadcast: %v", err)
	}
}

var eventOpCodes = map[app.EventKind]int64{
	app.EventRoundStarted: OpRoundStarted,
	app.EventHandDealt:    OpHandDealt,
	app.EventTilePlaced:   OpTilePlaced,
	app.EventTilesDrawn:   OpTilesDrawn,
	app.EventTurnPassed:   OpTurnPassed,
	app.EventScoreAwarded: OpScoreAwarded,
	app.EventRoundEnded:   OpRoundEnded,
	app.EventMatchEnded:   OpMatchEnded,
}

func (mh *matchHandler) broadcastEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	relabel := false
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
		switch ev.Kind {
		case app.EventRoundStarted, app.EventRoundEnded, app.EventMatchEnded:
			relabel = true
		}
	}
	if relabel {
		mh.updateLabel(state, dispatcher, logger)
	}
}

// broadcastEvent handles the conversion and dispatching of app events to Nakama.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, ok := eventOpCodes[ev.Kind]
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast)
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seat := range ev.Recipients {
			if seat < 1 || seat > domain.MaxSeats {
				continue
			}
			if p, ok := state.Presences[state.Seats[seat-1]]; ok {
				recipients = append(recipients, p)
			}
		}

		// Targeted events for bots or disconnected players go nowhere.
		if len(recipients) == 0 {
			return
		}
	}

	if err := dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true); err != nil {
		logger.Error("Failed to broadcast event %v: %v", ev.Kind, err)
	}
}

// sendError sends a GameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(GameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal GameErrorEvent: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	if err := dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("Failed to send error to %s: %v", userID, err)
	}
}

// matchLabel renders the listing label, e.g. {"game":"dominoes","open":true,"open_seats":3,"phase":"lobby"}.
func matchLabel(state *MatchState) (string, error) {
	label, err := structpb.NewStruct(map[string]interface{}{
		MatchLabelKey_Open:      !state.GameActive() && state.GetOpenSeatsCount() > 0,
		MatchLabelKey_OpenSeats: state.GetOpenSeatsCount(),
		"game":                  gameName,
		"phase":                 state.Phase(),
	})
	if err != nil {
		return "", err
	}
	labelBytes, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(label)
	if err != nil {
		return "", err
	}
	return string(labelBytes), nil
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := matchLabel(state)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	if matchState, ok := state.(*MatchState); ok {
		matchState.BotWaitUntil = 0
	}
	logger.Debug("MatchTerminate: Match terminated with grace period %d", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
