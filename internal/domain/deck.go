package domain

import (
	"fmt"
	"math/rand"
)

const (
	// MaxPip is the highest pip value on a double-six set.
	MaxPip = 6
	// DeckSize is the number of tiles in a double-six set.
	DeckSize = 28
	// HandSize is the number of tiles dealt to each seat.
	HandSize = 7
)

// Tile is an unordered domino with halves A <= B.
type Tile struct {
	A int `json:"a"`
	B int `json:"b"`
}

// NewTile normalizes the halves so that A <= B.
func NewTile(a, b int) Tile {
	if a > b {
		a, b = b, a
	}
	return Tile{A: a, B: b}
}

// IsDouble reports whether both halves carry the same value.
func (t Tile) IsDouble() bool {
	return t.A == t.B
}

// Pips is the total of both halves.
func (t Tile) Pips() int {
	return t.A + t.B
}

// Has reports whether either half equals v.
func (t Tile) Has(v int) bool {
	return t.A == v || t.B == v
}

func (t Tile) String() string {
	return fmt.Sprintf("%d-%d", t.A, t.B)
}

// NewDeck returns the 28 canonical tiles in generation order.
func NewDeck() []Tile {
	deck := make([]Tile, 0, DeckSize)
	for a := 0; a <= MaxPip; a++ {
		for b := a; b <= MaxPip; b++ {
			deck = append(deck, Tile{A: a, B: b})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(rng *rand.Rand, deck []Tile) []Tile {
	out := make([]Tile, len(deck))
	copy(out, deck)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deal splits a shuffled deck into per-seat hands and the remaining pool.
func Deal(deck []Tile, players int) ([MaxSeats][]Tile, []Tile, error) {
	var hands [MaxSeats][]Tile
	if players < MinSeats || players > MaxSeats {
		return hands, nil, fmt.Errorf("%w: %d", ErrInvalidPlayerCount, players)
	}
	if players*HandSize > len(deck) {
		return hands, nil, fmt.Errorf("%w: deck of %d cannot seat %d", ErrInvalidPlayerCount, len(deck), players)
	}
	for p := 1; p <= players; p++ {
		hands[p-1] = append([]Tile{}, deck[(p-1)*HandSize:p*HandSize]...)
	}
	pool := append([]Tile{}, deck[players*HandSize:]...)
	return hands, pool, nil
}

// HandPips sums every half of every tile in the hand.
func HandPips(hand []Tile) int {
	total := 0
	for _, t := range hand {
		total += t.Pips()
	}
	return total
}

// RemoveTileAt returns a copy of hand without the tile at index i.
func RemoveTileAt(hand []Tile, i int) []Tile {
	out := make([]Tile, 0, len(hand)-1)
	out = append(out, hand[:i]...)
	return append(out, hand[i+1:]...)
}
