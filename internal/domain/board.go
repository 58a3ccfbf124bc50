package domain

import "fmt"

// PlacedTile is a tile after orientation was fixed on the board.
type PlacedTile struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Tile returns the unordered identity of the placed tile.
func (p PlacedTile) Tile() Tile {
	return NewTile(p.Left, p.Right)
}

// Ends holds the two exposed values of a non-empty board.
type Ends struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Board is the ordered chain of placed tiles, leftmost first.
type Board []PlacedTile

// OpenEnds returns the exposed values. ok is false for an empty board.
func (b Board) OpenEnds() (Ends, bool) {
	if len(b) == 0 {
		return Ends{}, false
	}
	return Ends{Left: b[0].Left, Right: b[len(b)-1].Right}, true
}

// PipSum is the value the cinco variant scores against.
// A lone tile exposes both of its halves, so it counts both.
func (b Board) PipSum() int {
	switch len(b) {
	case 0:
		return 0
	case 1:
		return b[0].Left + b[0].Right
	default:
		ends, _ := b.OpenEnds()
		return ends.Left + ends.Right
	}
}

// Place returns a new board with t attached on the given side.
// It panics if t cannot touch that end; callers must check LegalSides first.
func (b Board) Place(t Tile, side Side) Board {
	ends, ok := b.OpenEnds()
	if !ok {
		return Board{{Left: t.A, Right: t.B}}
	}

	out := make(Board, 0, len(b)+1)
	switch side {
	case SideLeft:
		var placed PlacedTile
		switch {
		case t.B == ends.Left:
			placed = PlacedTile{Left: t.A, Right: t.B}
		case t.A == ends.Left:
			placed = PlacedTile{Left: t.B, Right: t.A}
		default:
			panic(fmt.Sprintf("domain: tile %s does not match left end %d", t, ends.Left))
		}
		out = append(out, placed)
		out = append(out, b...)
	case SideRight:
		var placed PlacedTile
		switch {
		case t.A == ends.Right:
			placed = PlacedTile{Left: t.A, Right: t.B}
		case t.B == ends.Right:
			placed = PlacedTile{Left: t.B, Right: t.A}
		default:
			panic(fmt.Sprintf("domain: tile %s does not match right end %d", t, ends.Right))
		}
		out = append(out, b...)
		out = append(out, placed)
	default:
		panic(fmt.Sprintf("domain: unknown side %q", side))
	}
	return out
}
