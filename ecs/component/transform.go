package component

import "github.com/jakecoffman/cp"

// Transform is the top-left corner of an entity in logical viewport pixels.
type Transform struct {
	Position cp.Vector
}

var TransformComponent = NewComponent[Transform]()
