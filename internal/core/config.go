package core

import "time"

// MaxFrameTime caps the elapsed time fed to a simulation step so a stalled
// terminal never produces one huge jump.
const MaxFrameTime = 50 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameTime returns the elapsed time of one tick, capped at MaxFrameTime.
func (c RuntimeConfig) FrameTime() time.Duration {
	if c.TickRate <= 0 {
		return MaxFrameTime
	}
	return min(time.Second/time.Duration(c.TickRate), MaxFrameTime)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, 0 for games without levels
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events lists short human-readable notes for this tick
	// (e.g. "level 2"), consumed by loggers and the status line.
	Events []string
}
