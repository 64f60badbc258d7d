package component

import "github.com/jakecoffman/cp"

// Transform holds the top-left corner of an entity's box in world units.
// Y grows downward.
type Transform struct {
	Position cp.Vector
}

var TransformComponent = NewComponent[Transform]()
