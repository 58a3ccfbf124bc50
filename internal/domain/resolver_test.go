package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWinnerTie(t *testing.T) {
	// Both hands hold 9 pips and neither matches the 6 ends.
	s := fixture(RuleClassic, Board{{Left: 6, Right: 6}}, nil,
		[]Tile{{A: 4, B: 5}},
		[]Tile{{A: 2, B: 3}, {A: 1, B: 3}},
	)
	s.Scores = [MaxSeats]int{2, 3}

	s, err := ApplyPass(s, 1)
	require.NoError(t, err)
	s, err = ApplyPass(s, 2)
	require.NoError(t, err)

	res := RoundWinner(s)
	assert.Equal(t, 0, res.Winner)
	assert.Equal(t, map[int]int{1: 9, 2: 9}, res.PipsBySeat)
	assert.True(t, s.RoundOver)
	assert.Equal(t, [MaxSeats]int{2, 3}, s.Scores)
	assert.Equal(t, 0, s.LastResult.Points)
}

func TestRoundWinnerLowestPips(t *testing.T) {
	s := fixture(RuleBlock, Board{{Left: 6, Right: 6}}, nil,
		[]Tile{{A: 4, B: 5}},
		[]Tile{{A: 0, B: 3}},
		[]Tile{{A: 0, B: 3}, {A: 0, B: 1}},
	)
	res := RoundWinner(s)
	assert.Equal(t, 2, res.Winner)
	assert.False(t, res.Domino)
}

func TestRoundWinnerTieAboveMinimumIgnored(t *testing.T) {
	s := fixture(RuleBlock, Board{{Left: 6, Right: 6}}, nil,
		[]Tile{{A: 4, B: 5}},
		[]Tile{{A: 4, B: 5}},
		[]Tile{{A: 0, B: 1}},
	)
	assert.Equal(t, 3, RoundWinner(s).Winner)
}

func TestRoundToFive(t *testing.T) {
	tests := map[int]int{0: 0, 2: 0, 3: 5, 7: 5, 8: 10, 12: 10, 13: 15, 25: 25, 27: 25, 28: 30}
	for in, want := range tests {
		assert.Equal(t, want, RoundToFive(in), "RoundToFive(%d)", in)
	}
}

func TestFivesDominoBonus(t *testing.T) {
	s := fixture(RuleFives, Board{{Left: 1, Right: 1}}, nil,
		[]Tile{{A: 1, B: 2}},
		[]Tile{{A: 6, B: 6}, {A: 0, B: 1}},
		[]Tile{{A: 3, B: 4}},
	)
	s.Scores = [MaxSeats]int{10, 0, 0}

	// Ends become 2 and 1: no placement score. Opponents hold 13+7=20.
	next, err := ApplyPlacement(s, 1, 0, SideLeft)
	require.NoError(t, err)

	assert.True(t, next.RoundOver)
	assert.False(t, next.MatchOver)
	assert.Equal(t, 30, next.Score(1))
	assert.Equal(t, 20, next.LastResult.Points)
	assert.Equal(t, PhaseRoundOver, next.Phase())
}

func TestFivesBlockedWinnerBonus(t *testing.T) {
	s := fixture(RuleFives, Board{{Left: 6, Right: 6}}, nil,
		[]Tile{{A: 0, B: 1}},
		[]Tile{{A: 4, B: 5}, {A: 2, B: 2}},
	)
	s, err := ApplyPass(s, 1)
	require.NoError(t, err)
	s, err = ApplyPass(s, 2)
	require.NoError(t, err)

	// 13 opponent pips round to 15.
	assert.Equal(t, 1, s.LastResult.Winner)
	assert.Equal(t, 15, s.Score(1))
}

func TestFivesMatchOverAtTarget(t *testing.T) {
	s := fixture(RuleFives, Board{{Left: 1, Right: 1}}, nil,
		[]Tile{{A: 1, B: 2}},
		[]Tile{{A: 6, B: 6}},
	)
	s.Scores = [MaxSeats]int{90, 40}

	next, err := ApplyPlacement(s, 1, 0, SideLeft)
	require.NoError(t, err)
	assert.Equal(t, 100, next.Score(1))
	assert.True(t, next.MatchOver)
}

func TestStartNewRoundCarriesScores(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s, err := NewGame(rng, RuleFives, true, 3)
	require.NoError(t, err)
	s.Scores = [MaxSeats]int{35, 10, 0}
	s.RoundOver = true
	s.PassCounter = 2
	s.Board = Board{{Left: 1, Right: 1}}

	next := StartNewRound(rng, s)
	assert.Equal(t, s.Scores, next.Scores)
	assert.Equal(t, 2, next.Round)
	assert.Equal(t, 1, next.CurrentPlayer)
	assert.Equal(t, 0, next.PassCounter)
	assert.Empty(t, next.Board)
	assert.False(t, next.RoundOver)
	assert.Nil(t, next.LastResult)
	assert.True(t, next.AIEnabled)
	assert.Equal(t, FivesTargetScore, next.TargetScore)
	for seat := 1; seat <= 3; seat++ {
		assert.Len(t, next.Hand(seat), HandSize)
	}
}

func TestNewGameValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := NewGame(rng, RuleType("domino-loco"), false, 2)
	assert.ErrorIs(t, err, ErrUnknownRuleType)

	_, err = NewGame(rng, RuleBlock, false, 5)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)

	s, err := NewGame(rng, RuleBlock, false, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, s.TargetScore)
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, PhaseDealing, GameState{}.Phase())
}
