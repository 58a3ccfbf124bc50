package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

// GameConfig holds table defaults for dominoes matches.
type GameConfig struct {
	DefaultRule string `json:"default_rule" env:"DOMINOES_DEFAULT_RULE"`
	PlayerCount int    `json:"player_count" env:"DOMINOES_PLAYER_COUNT"`
	BotsEnabled bool   `json:"bots_enabled" env:"DOMINOES_BOTS_ENABLED"`
	// BotMinDelayMs and BotMaxDelayMs bound the pause before a bot acts.
	BotMinDelayMs int `json:"bot_min_delay_ms" env:"DOMINOES_BOT_MIN_DELAY_MS"`
	BotMaxDelayMs int `json:"bot_max_delay_ms" env:"DOMINOES_BOT_MAX_DELAY_MS"`
	// TickRate is the Nakama match loop frequency (1..60).
	TickRate int `json:"tick_rate" env:"DOMINOES_TICK_RATE"`
}

// Default returns the built-in table settings.
func Default() GameConfig {
	return GameConfig{
		DefaultRule:   "clasico",
		PlayerCount:   4,
		BotsEnabled:   true,
		BotMinDelayMs: 800,
		BotMaxDelayMs: 1400,
		TickRate:      10,
	}
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path, then
// applies DOMINOES_* environment overrides. A missing file keeps the defaults.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c, err := Load(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// Load reads a config file without touching the process-wide config.
func Load(path string) (GameConfig, error) {
	c := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return GameConfig{}, fmt.Errorf("failed to unmarshal game config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return GameConfig{}, fmt.Errorf("failed to read game config: %w", err)
	}

	if err := env.Parse(&c); err != nil {
		return GameConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return GameConfig{}, err
	}
	return c, nil
}

// Validate checks ranges the engine and Nakama both rely on.
func (c GameConfig) Validate() error {
	if c.PlayerCount < 2 || c.PlayerCount > 4 {
		return fmt.Errorf("player_count must be between 2 and 4, got %d", c.PlayerCount)
	}
	if c.BotMinDelayMs < 0 || c.BotMaxDelayMs < c.BotMinDelayMs {
		return fmt.Errorf("invalid bot delay range: %d..%d ms", c.BotMinDelayMs, c.BotMaxDelayMs)
	}
	if c.TickRate < 1 || c.TickRate > 60 {
		return fmt.Errorf("tick_rate must be between 1 and 60, got %d", c.TickRate)
	}
	return nil
}

// GetGameConfig returns the global game configuration, or the defaults when
// nothing was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}

// BotDelayRange returns the bot pause bounds as durations.
func (c GameConfig) BotDelayRange() (time.Duration, time.Duration) {
	return time.Duration(c.BotMinDelayMs) * time.Millisecond, time.Duration(c.BotMaxDelayMs) * time.Millisecond
}
