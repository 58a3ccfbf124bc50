package bot

import (
	"fmt"
	"strings"

	"dominoes/internal/domain"

	"github.com/google/uuid"
)

const botIDPrefix = "bot-"

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent creates a greedy agent with a fresh bot user ID.
func NewAgent(index int) (*Agent, error) {
	brain, err := NewBrain(BotLevelGreedy)
	if err != nil {
		return nil, err
	}
	return &Agent{
		ID:       botIDPrefix + uuid.NewString(),
		Name:     fmt.Sprintf("AI Player %d", index),
		Strategy: brain,
	}, nil
}

// IsBot reports whether the given user ID was issued to an agent.
func IsBot(userID string) bool {
	if !strings.HasPrefix(userID, botIDPrefix) {
		return false
	}
	return uuid.Validate(strings.TrimPrefix(userID, botIDPrefix)) == nil
}

// PlayAtSeat asks the agent to decide a move for the given seat.
func (a *Agent) PlayAtSeat(state domain.GameState, seat int) (Move, error) {
	return a.Strategy.CalculateMove(state, seat)
}
