package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay

	// Clock drives every timed game state. Nil means the system clock.
	Clock Clock
	// Session keeps the high score across rounds. Nil means a private session.
	Session *Session
	// Cues receives sound cues. Nil means muted.
	Cues CueSink
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score of the session
	Lives     int  // Remaining lives
	Level     int  // Speed level, starting at 1
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue // Sound cues emitted during the step, in order
}
