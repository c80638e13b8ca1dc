package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
	"github.com/milk9111/hop/viewport"
)

// PhysicsSystem advances every body by one fixed step.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	stage, ok := Stage(w)
	if !ok {
		return
	}
	m := stage.Metrics

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, t *component.Transform, b *component.Body) {
		in, ok := ecs.Get(w, e, component.IntentComponent)
		if !ok {
			in = &component.Intent{}
		}
		Step(&t.Position, b, in, m)
	})
}

// Step integrates gravity, resolves the ground, applies horizontal intents
// (the later of right/left wins, they are not summed), consumes a grounded
// jump and clamps x into the viewport.
func Step(pos *cp.Vector, b *component.Body, in *component.Intent, m viewport.Metrics) {
	bb := m.PlayfieldFor(b.Width, b.Height)

	b.Velocity.Y += m.Gravity
	pos.Y += b.Velocity.Y

	if pos.Y > bb.T {
		pos.Y = bb.T
		b.Velocity.Y = 0
		b.Grounded = true
	} else {
		b.Grounded = false
	}

	if in.Right {
		pos.X += m.Speed
		b.FacingLeft = false
	}
	if in.Left {
		pos.X -= m.Speed
		b.FacingLeft = true
	}

	if in.Jump && b.Grounded {
		b.Velocity.Y = m.JumpImpulse
		b.Grounded = false
		in.Jump = false
	}

	pos.X = viewport.ClampX(bb, pos.X)
}
