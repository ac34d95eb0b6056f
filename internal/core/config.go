package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
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

// GameState represents the current state of the game as seen by the platform.
type GameState struct {
	Score     int    // Current (or final) score
	HighScore int    // Best score in this process
	Wave      int    // Current wave number
	Screen    string // Name of the current screen (menu, playing, gameover)
	GameOver  bool   // Whether the session has ended
	Paused    bool   // Whether the simulation is paused
	Quit      bool   // Whether the player asked to terminate the process
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Ended is true only on the tick where the session transitioned to game over.
	Ended bool
}

// Screen names reported in GameState.Screen.
const (
	ScreenNameMenu     = "menu"
	ScreenNamePlaying  = "playing"
	ScreenNameGameOver = "gameover"
)
