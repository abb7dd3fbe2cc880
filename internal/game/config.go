package game

import (
	"github.com/zappabad/tickrush/internal/session"
)

// Config holds configuration for the game.
type Config struct {
	// Session is the configuration for the trading session.
	Session session.Config
	// Seed seeds the random source; zero means seed from the clock.
	Seed int64
	// ProfileDir is where economy progress is persisted. Empty disables
	// persistence.
	ProfileDir string
	// EventBuffer is the size of the events channel to the UI.
	EventBuffer int
	// DropEvents determines whether the events channel drops on overflow.
	DropEvents bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Session:     session.DefaultConfig(),
		ProfileDir:  "./profile",
		EventBuffer: 256,
		DropEvents:  true,
	}
}
