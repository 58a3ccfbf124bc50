package bot

import (
	"testing"

	"dominoes/internal/domain"
)

func stateFor(rule domain.RuleType, board domain.Board, pool []domain.Tile, hand []domain.Tile) domain.GameState {
	s := domain.GameState{
		Board:         board,
		CurrentPlayer: 1,
		PlayerCount:   2,
		Pool:          pool,
		RuleType:      rule,
	}
	s.Hands[0] = hand
	s.Hands[1] = []domain.Tile{{A: 0, B: 0}}
	return s
}

func TestGreedyBot_CalculateMove(t *testing.T) {
	tests := []struct {
		name  string
		state domain.GameState
		want  Move
	}{
		{
			name: "HeaviestTileWins",
			state: stateFor(domain.RuleClassic, domain.Board{{Left: 3, Right: 5}}, nil,
				[]domain.Tile{{A: 0, B: 3}, {A: 5, B: 6}, {A: 3, B: 4}}),
			want: Move{Action: ActionPlace, Index: 1, Side: domain.SideRight, Tile: domain.Tile{A: 5, B: 6}},
		},
		{
			name: "PipTieKeepsHandOrder",
			state: stateFor(domain.RuleBlock, domain.Board{{Left: 2, Right: 4}}, nil,
				[]domain.Tile{{A: 1, B: 4}, {A: 2, B: 3}, {A: 0, B: 5}}),
			want: Move{Action: ActionPlace, Index: 0, Side: domain.SideRight, Tile: domain.Tile{A: 1, B: 4}},
		},
		{
			name: "BothSidesPrefersLeft",
			state: stateFor(domain.RuleClassic, domain.Board{{Left: 2, Right: 4}}, nil,
				[]domain.Tile{{A: 2, B: 4}}),
			want: Move{Action: ActionPlace, Index: 0, Side: domain.SideLeft, Tile: domain.Tile{A: 2, B: 4}},
		},
		{
			name: "EmptyBoardPlaysHeaviestLeft",
			state: stateFor(domain.RuleClassic, domain.Board{}, nil,
				[]domain.Tile{{A: 1, B: 1}, {A: 6, B: 6}, {A: 5, B: 6}}),
			want: Move{Action: ActionPlace, Index: 1, Side: domain.SideLeft, Tile: domain.Tile{A: 6, B: 6}},
		},
		{
			// Ends 5 and 1: 1-5 on the right exposes 5+5, 0-1 on the right
			// exposes 5+0, 5-6 on the left exposes 6+1 and 1-5 on the left 1+1.
			name: "FivesTakesBestMultiple",
			state: stateFor(domain.RuleFives, domain.Board{{Left: 5, Right: 1}}, nil,
				[]domain.Tile{{A: 5, B: 6}, {A: 0, B: 1}, {A: 1, B: 5}}),
			want: Move{Action: ActionPlace, Index: 2, Side: domain.SideRight, Tile: domain.Tile{A: 1, B: 5}},
		},
		{
			// 0-5 left exposes 0+5 and 4-5 left exposes 4+5; only the first
			// scores and it beats the heavier tile.
			name: "FivesBeatsHeavierTile",
			state: stateFor(domain.RuleFives, domain.Board{{Left: 5, Right: 5}, {Left: 5, Right: 5}}, nil,
				[]domain.Tile{{A: 4, B: 5}, {A: 0, B: 5}}),
			want: Move{Action: ActionPlace, Index: 1, Side: domain.SideLeft, Tile: domain.Tile{A: 0, B: 5}},
		},
		{
			// Both sides of 0-5 score 5; the left one is found first.
			name: "FivesTieKeepsFirstFound",
			state: stateFor(domain.RuleFives, domain.Board{{Left: 5, Right: 5}, {Left: 5, Right: 5}}, nil,
				[]domain.Tile{{A: 0, B: 5}}),
			want: Move{Action: ActionPlace, Index: 0, Side: domain.SideLeft, Tile: domain.Tile{A: 0, B: 5}},
		},
		{
			name: "FivesFallsBackToHeaviest",
			state: stateFor(domain.RuleFives, domain.Board{{Left: 1, Right: 2}}, nil,
				[]domain.Tile{{A: 1, B: 1}, {A: 2, B: 6}}),
			want: Move{Action: ActionPlace, Index: 1, Side: domain.SideRight, Tile: domain.Tile{A: 2, B: 6}},
		},
		{
			name: "BlockedClassicDraws",
			state: stateFor(domain.RuleClassic, domain.Board{{Left: 6, Right: 6}},
				[]domain.Tile{{A: 0, B: 0}}, []domain.Tile{{A: 1, B: 2}}),
			want: Move{Action: ActionDraw},
		},
		{
			name: "BlockedClassicEmptyPoolPasses",
			state: stateFor(domain.RuleClassic, domain.Board{{Left: 6, Right: 6}}, nil,
				[]domain.Tile{{A: 1, B: 2}}),
			want: Move{Action: ActionPass},
		},
		{
			name: "BlockedBloqueoPasses",
			state: stateFor(domain.RuleBlock, domain.Board{{Left: 6, Right: 6}},
				[]domain.Tile{{A: 0, B: 6}}, []domain.Tile{{A: 1, B: 2}}),
			want: Move{Action: ActionPass},
		},
	}

	bot := NewGreedyBot()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			move, err := bot.CalculateMove(test.state, 1)
			if err != nil {
				t.Fatalf("CalculateMove failed: %v", err)
			}
			if move != test.want {
				t.Fatalf("CalculateMove() = %+v, want %+v", move, test.want)
			}
		})
	}
}

func TestGreedyBot_MovesAreLegal(t *testing.T) {
	bot := NewGreedyBot()
	state := stateFor(domain.RuleFives, domain.Board{{Left: 3, Right: 4}}, nil,
		[]domain.Tile{{A: 0, B: 3}, {A: 4, B: 6}, {A: 1, B: 1}})

	move, err := bot.CalculateMove(state, 1)
	if err != nil {
		t.Fatalf("CalculateMove failed: %v", err)
	}
	if _, err := domain.ApplyPlacement(state, 1, move.Index, move.Side); err != nil {
		t.Fatalf("bot chose an illegal placement %+v: %v", move, err)
	}
}

func TestGreedyBot_RejectsWrongSeat(t *testing.T) {
	bot := NewGreedyBot()
	state := stateFor(domain.RuleClassic, domain.Board{}, nil, []domain.Tile{{A: 1, B: 1}})

	if _, err := bot.CalculateMove(state, 2); err == nil {
		t.Fatal("expected an error for a seat that is not current")
	}
	state.RoundOver = true
	if _, err := bot.CalculateMove(state, 1); err == nil {
		t.Fatal("expected an error after the round ended")
	}
}

func TestNewBrain(t *testing.T) {
	if _, err := NewBrain(BotLevelGreedy); err != nil {
		t.Fatalf("NewBrain(greedy) failed: %v", err)
	}
	if _, err := NewBrain(BotLevel(99)); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestAgentIdentity(t *testing.T) {
	agent, err := NewAgent(2)
	if err != nil {
		t.Fatalf("NewAgent failed: %v", err)
	}
	if !IsBot(agent.ID) {
		t.Fatalf("IsBot(%q) = false, want true", agent.ID)
	}
	if IsBot("user-1") || IsBot("bot-not-a-uuid") {
		t.Fatal("IsBot accepted a non-bot ID")
	}
	other, _ := NewAgent(3)
	if other.ID == agent.ID {
		t.Fatal("agents share an ID")
	}
}
