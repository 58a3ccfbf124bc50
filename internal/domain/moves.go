package domain

import "fmt"

func checkTurn(s GameState, seat int) error {
	if s.RoundOver {
		return fmt.Errorf("%w: round is over", ErrIllegalMove)
	}
	if seat < 1 || seat > s.PlayerCount {
		return fmt.Errorf("%w: unknown seat %d", ErrIllegalMove, seat)
	}
	if seat != s.CurrentPlayer {
		return fmt.Errorf("%w: seat %d acted on seat %d's turn", ErrIllegalMove, seat, s.CurrentPlayer)
	}
	return nil
}

// ApplyPlacement plays the tile at index from the seat's hand onto side.
func ApplyPlacement(s GameState, seat, index int, side Side) (GameState, error) {
	if err := checkTurn(s, seat); err != nil {
		return s, err
	}
	hand := s.Hands[seat-1]
	if index < 0 || index >= len(hand) {
		return s, fmt.Errorf("%w: tile index %d out of range (hand has %d)", ErrIllegalMove, index, len(hand))
	}
	tile := hand[index]
	if !IsLegal(tile, s.Board, side) {
		return s, fmt.Errorf("%w: tile %s cannot be placed on the %s end", ErrIllegalMove, tile, side)
	}

	next := s.Clone()
	next.Board = s.Board.Place(tile, side)
	next.Hands[seat-1] = RemoveTileAt(hand, index)
	next.PassCounter = 0

	// cinco scores on the placement itself, before any round-end check.
	if next.RuleType == RuleFives {
		next.Scores[seat-1] += FivesScore(next.Board)
	}

	if len(next.Hands[seat-1]) == 0 {
		return resolveRound(next), nil
	}
	next.CurrentPlayer = next.NextPlayer()
	return next, nil
}

// ApplyDraw draws from the front of the pool until a playable tile turns up.
// An exhausted pool with nothing playable becomes a pass.
func ApplyDraw(s GameState, seat int) (GameState, error) {
	if err := checkTurn(s, seat); err != nil {
		return s, err
	}
	if !s.RuleType.Draws() {
		return s, fmt.Errorf("%w: %s does not allow drawing", ErrIllegalMove, s.RuleType)
	}
	if len(s.Pool) == 0 {
		return s, fmt.Errorf("%w: pool is empty", ErrIllegalMove)
	}

	next := s.Clone()
	for len(next.Pool) > 0 {
		tile := next.Pool[0]
		next.Pool = next.Pool[1:]
		next.Hands[seat-1] = append(next.Hands[seat-1], tile)
		if len(LegalSides(tile, next.Board)) > 0 {
			return next, nil
		}
	}
	return pass(next), nil
}

// ApplyPass passes the turn. It is only legal when the seat can neither play
// nor draw.
func ApplyPass(s GameState, seat int) (GameState, error) {
	if err := checkTurn(s, seat); err != nil {
		return s, err
	}
	if HasLegalPlacement(s.Hands[seat-1], s.Board) {
		return s, fmt.Errorf("%w: seat %d has a legal placement", ErrIllegalMove, seat)
	}
	if s.RuleType.Draws() && len(s.Pool) > 0 {
		return s, fmt.Errorf("%w: seat %d must draw before passing", ErrIllegalMove, seat)
	}
	return pass(s.Clone()), nil
}

// CanDraw reports whether seat may draw right now.
func CanDraw(s GameState, seat int) bool {
	return checkTurn(s, seat) == nil && s.RuleType.Draws() && len(s.Pool) > 0
}

func pass(next GameState) GameState {
	next.PassCounter++
	if next.PassCounter >= next.PlayerCount {
		return resolveRound(next)
	}
	next.CurrentPlayer = next.NextPlayer()
	return next
}
