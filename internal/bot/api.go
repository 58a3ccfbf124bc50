package bot

import (
	"dominoes/internal/domain"
)

// Action is the kind of move a brain decided on.
type Action string

const (
	ActionPlace Action = "place"
	ActionDraw  Action = "draw"
	ActionPass  Action = "pass"
)

// Move represents the decision made by the AI.
type Move struct {
	Action Action
	// Index and Side are set for ActionPlace.
	Index int
	Side  domain.Side
	Tile  domain.Tile
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(state domain.GameState, seat int) (Move, error)
}
