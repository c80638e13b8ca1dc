package system

import (
	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
)

// AnimationSystem picks the sprite cell from the movement intents.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		moving := false
		if in, ok := ecs.Get(w, e, component.IntentComponent); ok {
			moving = in.Moving()
		}
		Advance(anim, moving)
	})
}

// Advance holds each frame for Layout.FrameDelay moving steps before moving
// to the next. Standing still snaps back to the idle frame 0 and restarts
// the hold count.
func Advance(anim *component.Animation, moving bool) {
	if !moving {
		anim.Frame = 0
		anim.Hold = 0
		return
	}
	anim.Hold++
	if anim.Hold >= anim.Layout.FrameDelay {
		anim.Hold = 0
		if anim.Layout.FrameCount > 0 {
			anim.Frame = (anim.Frame + 1) % anim.Layout.FrameCount
		}
	}
}
