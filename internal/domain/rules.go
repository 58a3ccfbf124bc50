package domain

// Side names a board end.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ParseSide maps a wire value onto a Side.
func ParseSide(s string) (Side, bool) {
	switch Side(s) {
	case SideLeft:
		return SideLeft, true
	case SideRight:
		return SideRight, true
	default:
		return "", false
	}
}

// LegalSides lists the ends that accept t, always Left before Right.
// An empty board accepts every tile, conventionally on the left.
func LegalSides(t Tile, board Board) []Side {
	ends, ok := board.OpenEnds()
	if !ok {
		return []Side{SideLeft}
	}
	sides := make([]Side, 0, 2)
	if t.Has(ends.Left) {
		sides = append(sides, SideLeft)
	}
	if t.Has(ends.Right) {
		sides = append(sides, SideRight)
	}
	return sides
}

// IsLegal reports whether t may be placed on side.
func IsLegal(t Tile, board Board, side Side) bool {
	for _, s := range LegalSides(t, board) {
		if s == side {
			return true
		}
	}
	return false
}

// Placement is a candidate play from a hand.
type Placement struct {
	Index int
	Tile  Tile
	Side  Side
}

// LegalPlacements enumerates every playable (tile, side) in hand order, then side order.
func LegalPlacements(hand []Tile, board Board) []Placement {
	var out []Placement
	for i, t := range hand {
		for _, side := range LegalSides(t, board) {
			out = append(out, Placement{Index: i, Tile: t, Side: side})
		}
	}
	return out
}

// HasLegalPlacement reports whether any tile in hand can be played.
func HasLegalPlacement(hand []Tile, board Board) bool {
	for _, t := range hand {
		if len(LegalSides(t, board)) > 0 {
			return true
		}
	}
	return false
}

// FivesScore is the score a cinco board is worth right now: the pip sum when it
// is a non-zero multiple of five, zero otherwise.
func FivesScore(board Board) int {
	sum := board.PipSum()
	if sum > 0 && sum%5 == 0 {
		return sum
	}
	return 0
}
