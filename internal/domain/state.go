package domain

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	MinSeats = 2
	MaxSeats = 4

	// FivesTargetScore ends a cinco match.
	FivesTargetScore = 100
)

// RuleType selects one of the supported rule variants.
type RuleType string

const (
	// RuleClassic draws from the pool when blocked and awards one point per round.
	RuleClassic RuleType = "clasico"
	// RuleBlock never draws; a blocked seat passes.
	RuleBlock RuleType = "bloqueo"
	// RuleFives ("All Fives") scores multiples of five as they appear on the board.
	RuleFives RuleType = "cinco"
)

// ParseRuleType validates a rule name.
func ParseRuleType(s string) (RuleType, error) {
	switch RuleType(s) {
	case RuleClassic, RuleBlock, RuleFives:
		return RuleType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRuleType, s)
	}
}

// Draws reports whether the variant lets a blocked seat draw from the pool.
func (r RuleType) Draws() bool {
	return r == RuleClassic || r == RuleFives
}

// Phase is the lifecycle stage of a round.
type Phase string

const (
	PhaseDealing    Phase = "dealing"
	PhaseInProgress Phase = "in_progress"
	PhaseRoundOver  Phase = "round_over"
	PhaseMatchOver  Phase = "match_over"
)

var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrInvalidPlayerCount = errors.New("player count must be between 2 and 4")
	ErrUnknownRuleType    = errors.New("unknown rule type")
)

// GameState is an immutable snapshot of a round. Every operation in this
// package returns a fresh value and never shares slices with its input.
type GameState struct {
	Hands         [MaxSeats][]Tile `json:"hands"`
	Board         Board            `json:"board"`
	CurrentPlayer int              `json:"current_player"`
	PlayerCount   int              `json:"player_count"`
	Pool          []Tile           `json:"pool"`
	PassCounter   int              `json:"pass_counter"`
	Scores        [MaxSeats]int    `json:"scores"`
	RuleType      RuleType         `json:"rule_type"`
	TargetScore   int              `json:"target_score"`
	RoundOver     bool             `json:"round_over"`
	MatchOver     bool             `json:"match_over"`
	AIEnabled     bool             `json:"ai_enabled"`
	Round         int              `json:"round"`

	// LastResult is set once the round is resolved.
	LastResult *RoundResult `json:"last_result,omitempty"`
}

// Hand returns the tiles held by a 1-based seat.
func (s GameState) Hand(seat int) []Tile {
	if seat < 1 || seat > s.PlayerCount {
		return nil
	}
	return s.Hands[seat-1]
}

// Score returns the match score of a 1-based seat.
func (s GameState) Score(seat int) int {
	if seat < 1 || seat > s.PlayerCount {
		return 0
	}
	return s.Scores[seat-1]
}

// IsAISeat reports whether the seat is computer-controlled.
func (s GameState) IsAISeat(seat int) bool {
	return s.AIEnabled && seat > 1 && seat <= s.PlayerCount
}

// Phase derives the lifecycle stage.
func (s GameState) Phase() Phase {
	switch {
	case s.PlayerCount == 0:
		return PhaseDealing
	case s.MatchOver:
		return PhaseMatchOver
	case s.RoundOver:
		return PhaseRoundOver
	default:
		return PhaseInProgress
	}
}

// NextPlayer returns the seat after the current one in fixed rotation.
func (s GameState) NextPlayer() int {
	return (s.CurrentPlayer % s.PlayerCount) + 1
}

// Clone deep-copies the state.
func (s GameState) Clone() GameState {
	out := s
	for i := range s.Hands {
		if s.Hands[i] != nil {
			out.Hands[i] = append([]Tile{}, s.Hands[i]...)
		}
	}
	out.Board = append(Board{}, s.Board...)
	out.Pool = append([]Tile{}, s.Pool...)
	if s.LastResult != nil {
		res := s.LastResult.clone()
		out.LastResult = &res
	}
	return out
}

// NewGame deals the first round of a match.
func NewGame(rng *rand.Rand, rule RuleType, aiEnabled bool, players int) (GameState, error) {
	if _, err := ParseRuleType(string(rule)); err != nil {
		return GameState{}, err
	}
	target := 0
	if rule == RuleFives {
		target = FivesTargetScore
	}
	return deal(rng, GameState{
		PlayerCount: players,
		RuleType:    rule,
		TargetScore: target,
		AIEnabled:   aiEnabled,
	})
}

// StartNewRound re-deals while carrying the match scores forward.
func StartNewRound(rng *rand.Rand, prev GameState) GameState {
	next, err := deal(rng, GameState{
		PlayerCount: prev.PlayerCount,
		Scores:      prev.Scores,
		RuleType:    prev.RuleType,
		TargetScore: prev.TargetScore,
		AIEnabled:   prev.AIEnabled,
		Round:       prev.Round,
	})
	if err != nil {
		// prev was produced by NewGame, so its player count is valid.
		panic(err)
	}
	return next
}

func deal(rng *rand.Rand, base GameState) (GameState, error) {
	hands, pool, err := Deal(ShuffleDeck(rng, NewDeck()), base.PlayerCount)
	if err != nil {
		return GameState{}, err
	}
	base.Hands = hands
	base.Pool = pool
	base.Board = Board{}
	base.CurrentPlayer = 1
	base.Round++
	return base, nil
}
