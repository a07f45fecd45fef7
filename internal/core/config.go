package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (TUI) or pixels (window)
	ScreenH  int // Screen height in characters (TUI) or pixels (window)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int    // Current score
	Paused  bool   // Whether the simulation is paused
	Cleared bool   // Whether every token in the level has been collected
	Tick    uint64 // Simulated ticks since the last reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Collected int  // Tokens collected during this tick
	Respawned bool // Whether the body fell out of the world this tick
}
