package core

// RuntimeConfig contains the host parameters a simulation is started with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second (default 60)
	Seed     int64 // RNG seed; 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 fps.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
