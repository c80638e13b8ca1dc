package system

import (
	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
	"github.com/milk9111/hop/viewport"
)

// Stage returns the stage singleton, if the world has one.
func Stage(w *ecs.World) (*component.Stage, bool) {
	e, ok := w.First(component.StageComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.StageComponent)
}

// ApplyViewport recomputes the stage metrics for a new viewport and fits
// every body to them: size from the character fraction, y on the new ground
// and x back inside the horizontal bounds. Safe to call repeatedly.
func ApplyViewport(w *ecs.World, width, height, dpr float64) (viewport.Metrics, bool) {
	stage, ok := Stage(w)
	if !ok {
		return viewport.Metrics{}, false
	}
	stage.Metrics = viewport.Compute(width, height, dpr, stage.Config)
	m := stage.Metrics

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, t *component.Transform, b *component.Body) {
		b.Width = m.CharacterSize
		b.Height = m.CharacterSize
		bb := m.PlayfieldFor(b.Width, b.Height)
		t.Position.Y = bb.T
		t.Position.X = viewport.ClampX(bb, t.Position.X)
	})
	return m, true
}

// Retune swaps the proportional tuning and re-applies the current viewport.
func Retune(w *ecs.World, cfg viewport.Config) (viewport.Metrics, bool) {
	stage, ok := Stage(w)
	if !ok {
		return viewport.Metrics{}, false
	}
	stage.Config = cfg
	m := stage.Metrics
	return ApplyViewport(w, m.Width, m.Height, m.DPR)
}
