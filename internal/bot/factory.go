package bot

import (
	"fmt"
)

// BotLevel selects a brain implementation.
type BotLevel int

const (
	BotLevelGreedy BotLevel = iota
)

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelGreedy:
		return NewGreedyBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
