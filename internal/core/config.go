package core

// RuntimeConfig is passed to scenes at initialization. Scenes use it to
// adapt to the terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed (0 = platform picks one)
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

// SceneState is returned by Scene.State() to communicate status to the
// platform layer.
type SceneState struct {
	Score      int  // Current score
	Collisions int  // Reactions dispatched so far this run
	GameOver   bool // Whether the run has ended
	Paused     bool // Whether the scene is paused
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	State SceneState
}
