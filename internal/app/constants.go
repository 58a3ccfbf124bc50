package app

import "time"

// Default pause before a computer seat acts.
const (
	DefaultBotMinDelay = 800 * time.Millisecond
	DefaultBotMaxDelay = 1400 * time.Millisecond
)
