package core

// RuntimeConfig contains configuration passed to a run at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// RunState summarizes a run for the front-end and the score store.
type RunState struct {
	Score    int
	Passes   int  // Obstacles passed, smashed ones included
	Smashes  int  // Obstacles broken by the streak rule
	Bounces  int  // Debounced solid contacts
	GameOver bool // Set when the ball touched a hazard
	Paused   bool
}
