package bot

import (
	"dominoes/internal/domain"
)

// DecisionContext holds the state for the move decision pipeline.
type DecisionContext struct {
	State      domain.GameState
	Seat       int
	Hand       []domain.Tile
	Placements []domain.Placement
}

// DecisionRule is one step of the decision order. Apply returns ok=false when
// the rule does not apply and the next rule should be consulted.
type DecisionRule interface {
	Name() string
	Apply(ctx *DecisionContext) (Move, bool)
}

// FivesRule takes the placement that scores the most under cinco.
type FivesRule struct{}

func (r *FivesRule) Name() string { return "Fives" }

func (r *FivesRule) Apply(ctx *DecisionContext) (Move, bool) {
	if ctx.State.RuleType != domain.RuleFives {
		return Move{}, false
	}
	best, bestScore := -1, 0
	for i, p := range ctx.Placements {
		score := domain.FivesScore(ctx.State.Board.Place(p.Tile, p.Side))
		// Strictly greater keeps the first placement found on ties.
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Move{}, false
	}
	return placeMove(ctx.Placements[best]), true
}

// HeaviestTileRule plays the tile with the most pips on its first legal side.
type HeaviestTileRule struct{}

func (r *HeaviestTileRule) Name() string { return "HeaviestTile" }

func (r *HeaviestTileRule) Apply(ctx *DecisionContext) (Move, bool) {
	if len(ctx.Placements) == 0 {
		return Move{}, false
	}
	best := 0
	for i, p := range ctx.Placements {
		if p.Tile.Pips() > ctx.Placements[best].Tile.Pips() {
			best = i
		}
	}
	return placeMove(ctx.Placements[best]), true
}

// DrawOrPassRule handles a hand with nothing to play.
type DrawOrPassRule struct{}

func (r *DrawOrPassRule) Name() string { return "DrawOrPass" }

func (r *DrawOrPassRule) Apply(ctx *DecisionContext) (Move, bool) {
	if len(ctx.Placements) > 0 {
		return Move{}, false
	}
	if domain.CanDraw(ctx.State, ctx.Seat) {
		return Move{Action: ActionDraw}, true
	}
	return Move{Action: ActionPass}, true
}

// DefaultRules is the decision order of the greedy policy.
func DefaultRules() []DecisionRule {
	return []DecisionRule{&FivesRule{}, &HeaviestTileRule{}, &DrawOrPassRule{}}
}

func placeMove(p domain.Placement) Move {
	return Move{Action: ActionPlace, Index: p.Index, Side: p.Side, Tile: p.Tile}
}
