package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"dominoes/internal/bot"
	"dominoes/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

var (
	ErrNoGame          = errors.New("no game in progress")
	ErrRoundInProgress = errors.New("round still in progress")
	ErrMatchOver       = errors.New("match is over")
	ErrNotBotTurn      = errors.New("current seat is not computer-controlled")
)

// Service holds the authoritative game state for one table and applies
// human and bot actions to it through the same path.
type Service struct {
	rng    *rand.Rand
	brain  bot.Brain
	logger runtime.Logger

	state   domain.GameState
	started bool
}

// NewService constructs a Service. A nil rng is replaced by a time-seeded
// source, a nil brain by the greedy policy and a nil logger by a no-op one.
func NewService(rng *rand.Rand, brain bot.Brain, logger runtime.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if brain == nil {
		brain = bot.NewGreedyBot()
	}
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Service{rng: rng, brain: brain, logger: logger}
}

// State returns the current snapshot. The value is never mutated afterwards.
func (s *Service) State() domain.GameState {
	return s.state
}

// Started reports whether NewGame has been called.
func (s *Service) Started() bool {
	return s.started
}

// NewGame deals the first round of a new match, discarding any previous one.
func (s *Service) NewGame(rule domain.RuleType, aiEnabled bool, players int) ([]Event, error) {
	state, err := domain.NewGame(s.rng, rule, aiEnabled, players)
	if err != nil {
		return nil, err
	}
	s.state = state
	s.started = true
	s.logger.Info("NewGame: rule=%s players=%d ai=%t", rule, players, aiEnabled)
	return roundStartedEvents(state), nil
}

// NewRound deals the next round of the current match, keeping scores.
func (s *Service) NewRound() ([]Event, error) {
	if !s.started {
		return nil, ErrNoGame
	}
	if !s.state.RoundOver {
		return nil, ErrRoundInProgress
	}
	if s.state.MatchOver {
		return nil, ErrMatchOver
	}
	s.state = domain.StartNewRound(s.rng, s.state)
	s.logger.Info("NewRound: round=%d scores=%v", s.state.Round, scoresOf(s.state))
	return roundStartedEvents(s.state), nil
}

// PlaceTile applies a human placement.
func (s *Service) PlaceTile(seat, index int, side domain.Side) ([]Event, error) {
	if err := s.checkHuman(seat); err != nil {
		return nil, err
	}
	return s.apply(seat, bot.Move{Action: bot.ActionPlace, Index: index, Side: side})
}

// DrawTile applies a human draw.
func (s *Service) DrawTile(seat int) ([]Event, error) {
	if err := s.checkHuman(seat); err != nil {
		return nil, err
	}
	return s.apply(seat, bot.Move{Action: bot.ActionDraw})
}

// PassTurn applies a human pass.
func (s *Service) PassTurn(seat int) ([]Event, error) {
	if err := s.checkHuman(seat); err != nil {
		return nil, err
	}
	return s.apply(seat, bot.Move{Action: bot.ActionPass})
}

// BotPending reports whether the seat to act is computer-controlled.
func (s *Service) BotPending() bool {
	return s.started && !s.state.RoundOver && s.state.IsAISeat(s.state.CurrentPlayer)
}

// PlayBotTurn asks the brain for the current seat's move and applies it.
func (s *Service) PlayBotTurn() ([]Event, error) {
	if !s.BotPending() {
		return nil, ErrNotBotTurn
	}
	seat := s.state.CurrentPlayer
	move, err := s.brain.CalculateMove(s.state, seat)
	if err != nil {
		return nil, fmt.Errorf("bot seat %d: %w", seat, err)
	}
	s.logger.Debug("PlayBotTurn: seat=%d action=%s tile=%s side=%s", seat, move.Action, move.Tile, move.Side)
	return s.apply(seat, move)
}

// RunBots plays bot turns until a human must act or the round ends.
func (s *Service) RunBots() ([]Event, error) {
	var events []Event
	for s.BotPending() {
		evs, err := s.PlayBotTurn()
		if err != nil {
			return events, err
		}
		events = append(events, evs...)
	}
	return events, nil
}

func (s *Service) checkHuman(seat int) error {
	if !s.started {
		return ErrNoGame
	}
	if s.state.IsAISeat(seat) {
		return fmt.Errorf("%w: seat %d is computer-controlled", domain.ErrIllegalMove, seat)
	}
	return nil
}

func (s *Service) apply(seat int, move bot.Move) ([]Event, error) {
	before := s.state

	var (
		after domain.GameState
		err   error
	)
	switch move.Action {
	case bot.ActionPlace:
		after, err = domain.ApplyPlacement(before, seat, move.Index, move.Side)
	case bot.ActionDraw:
		after, err = domain.ApplyDraw(before, seat)
	case bot.ActionPass:
		after, err = domain.ApplyPass(before, seat)
	default:
		err = fmt.Errorf("%w: unknown action %q", domain.ErrIllegalMove, move.Action)
	}
	if err != nil {
		s.logger.Warn("apply: seat %d %s rejected: %v", seat, move.Action, err)
		return nil, err
	}

	s.state = after
	return transitionEvents(before, after, seat, move), nil
}

func roundStartedEvents(state domain.GameState) []Event {
	var aiSeats []int
	for seat := 1; seat <= state.PlayerCount; seat++ {
		if state.IsAISeat(seat) {
			aiSeats = append(aiSeats, seat)
		}
	}

	events := make([]Event, 0, state.PlayerCount+1)
	events = append(events, Event{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			Round:       state.Round,
			Rule:        state.RuleType,
			PlayerCount: state.PlayerCount,
			FirstTurn:   state.CurrentPlayer,
			PoolSize:    len(state.Pool),
			Scores:      scoresOf(state),
			AISeats:     aiSeats,
		},
	})
	for seat := 1; seat <= state.PlayerCount; seat++ {
		events = append(events, handEvent(state, seat))
	}
	return events
}

func handEvent(state domain.GameState, seat int) Event {
	return Event{
		Kind:       EventHandDealt,
		Payload:    HandDealtPayload{Seat: seat, Hand: append([]domain.Tile{}, state.Hand(seat)...)},
		Recipients: []int{seat},
	}
}

// transitionEvents describes what changed between two consecutive states.
func transitionEvents(before, after domain.GameState, seat int, move bot.Move) []Event {
	var events []Event

	switch move.Action {
	case bot.ActionPlace:
		tile := before.Hand(seat)[move.Index]
		ends, _ := after.Board.OpenEnds()
		events = append(events, Event{
			Kind: EventTilePlaced,
			Payload: TilePlacedPayload{
				Seat:     seat,
				Tile:     tile,
				Side:     move.Side,
				Ends:     ends,
				HandSize: len(after.Hand(seat)),
				NextTurn: after.CurrentPlayer,
				Board:    after.Board,
			},
		})
		if after.RuleType == domain.RuleFives {
			if points := domain.FivesScore(after.Board); points > 0 {
				events = append(events, Event{
					Kind:    EventScoreAwarded,
					Payload: ScoreAwardedPayload{Seat: seat, Points: points, Total: before.Score(seat) + points},
				})
			}
		}
	case bot.ActionDraw:
		drawn := len(before.Pool) - len(after.Pool)
		events = append(events,
			Event{
				Kind:    EventTilesDrawn,
				Payload: TilesDrawnPayload{Seat: seat, Count: drawn, PoolRemaining: len(after.Pool)},
			},
			handEvent(after, seat),
		)
		if after.PassCounter > before.PassCounter {
			events = append(events, passEvent(after, seat, true))
		}
	case bot.ActionPass:
		events = append(events, passEvent(after, seat, false))
	}

	if after.RoundOver && !before.RoundOver {
		events = append(events, roundEndEvents(after)...)
	}
	return events
}

func passEvent(after domain.GameState, seat int, auto bool) Event {
	next := after.CurrentPlayer
	if after.RoundOver {
		next = 0
	}
	return Event{
		Kind: EventTurnPassed,
		Payload: TurnPassedPayload{
			Seat:        seat,
			Auto:        auto,
			PassCounter: after.PassCounter,
			NextTurn:    next,
		},
	}
}

func roundEndEvents(after domain.GameState) []Event {
	var result domain.RoundResult
	if after.LastResult != nil {
		result = *after.LastResult
	} else {
		result = domain.RoundWinner(after)
	}

	events := []Event{{
		Kind:    EventRoundEnded,
		Payload: RoundEndedPayload{Round: after.Round, Result: result, Scores: scoresOf(after)},
	}}
	if after.MatchOver {
		events = append(events, Event{
			Kind:    EventMatchEnded,
			Payload: MatchEndedPayload{Scores: scoresOf(after), Leader: leader(after)},
		})
	}
	return events
}

func scoresOf(state domain.GameState) []int {
	return append([]int{}, state.Scores[:state.PlayerCount]...)
}

func leader(state domain.GameState) int {
	best, tied := 0, false
	for seat := 1; seat <= state.PlayerCount; seat++ {
		switch {
		case best == 0 || state.Score(seat) > state.Score(best):
			best, tied = seat, false
		case state.Score(seat) == state.Score(best):
			tied = true
		}
	}
	if tied {
		return 0
	}
	return best
}
