package component

import "github.com/jakecoffman/cp"

// Velocity is the per-tick displacement of a kinematic entity.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
