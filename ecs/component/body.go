package component

import "github.com/jakecoffman/cp"

// Body is the character's physical state. Only Velocity.Y is integrated;
// horizontal motion is applied directly from intents.
type Body struct {
	Width      float64
	Height     float64
	Velocity   cp.Vector
	Grounded   bool
	FacingLeft bool
}

var BodyComponent = NewComponent[Body]()
