package component

import "github.com/jakecoffman/cp"

// LevelBounds stores the fixed extents of the current level.
type LevelBounds struct {
	Left  float64
	Right float64
	// Height is the total world height; falling below it loses the round.
	Height float64
	// WinX is the goal offset; passing it wins the round.
	WinX  float64
	Spawn cp.Vector
}

var LevelBoundsComponent = NewComponent[LevelBounds]()

// Gravity is the per-tick vertical acceleration applied to airborne bodies.
type Gravity struct {
	Accel float64
}

var GravityComponent = NewComponent[Gravity]()
