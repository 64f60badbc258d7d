package common

const (
	BaseWidth  = 1024
	BaseHeight = 768

	// TicksPerSecond is the simulation rate the tunables are authored for.
	TicksPerSecond = 60
)
