package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the terminal size and the tick rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frame driver ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the coarse state a game reports to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the game ended with every brick cleared
	Paused   bool // Whether the frame driver is paused
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
