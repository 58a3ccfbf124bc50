package bot

import (
	"fmt"

	"dominoes/internal/domain"
)

// GreedyBot is a single-ply policy with no lookahead. Placements are visited
// in hand order and left before right, so ties always resolve to the first
// one found; replay tests depend on that order.
type GreedyBot struct {
	Rules []DecisionRule
}

// NewGreedyBot builds a GreedyBot with the default decision order.
func NewGreedyBot() *GreedyBot {
	return &GreedyBot{Rules: DefaultRules()}
}

func (b *GreedyBot) CalculateMove(state domain.GameState, seat int) (Move, error) {
	if state.RoundOver {
		return Move{}, fmt.Errorf("seat %d asked to move after the round ended", seat)
	}
	if seat != state.CurrentPlayer {
		return Move{}, fmt.Errorf("seat %d asked to move on seat %d's turn", seat, state.CurrentPlayer)
	}

	hand := state.Hand(seat)
	ctx := &DecisionContext{
		State:      state,
		Seat:       seat,
		Hand:       hand,
		Placements: domain.LegalPlacements(hand, state.Board),
	}
	for _, rule := range b.Rules {
		if move, ok := rule.Apply(ctx); ok {
			return move, nil
		}
	}
	return Move{Action: ActionPass}, nil
}
