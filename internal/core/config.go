package core

import "time"

// HUDRows is the number of screen rows the interactive front end reserves
// below the viewport for the status line.
const HUDRows = 1

// RuntimeConfig contains configuration passed to a session at start.
// Sessions use it to size the viewport and pace the tick loop.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters available for the world
	TickRate int // Simulation ticks per second (default 50)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
	}
}

// TickInterval returns the fixed wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 50
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a session.
// Returned by State() to communicate status to the front end.
type GameState struct {
	Ticks  int  // Ticks simulated since the last reset
	Falls  int  // Times the body fell out of the world and respawned
	Paused bool // Whether the session is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The tick consumed a quit action
}
