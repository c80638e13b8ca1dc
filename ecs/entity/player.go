package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
	"github.com/milk9111/hop/prefabs"
	"github.com/milk9111/hop/viewport"
)

// NewStage creates the singleton holding the viewport tuning.
func NewStage(w *ecs.World, cfg viewport.Config) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.StageComponent, component.Stage{Config: cfg}); err != nil {
		return 0, fmt.Errorf("stage: %w", err)
	}
	return e, nil
}

// SheetLayout converts the sprite section of a player spec.
func SheetLayout(sp prefabs.SpriteSpec) component.SheetLayout {
	return component.SheetLayout{
		FrameW:     sp.FrameW,
		FrameH:     sp.FrameH,
		FrameCount: sp.FrameCount,
		Columns:    sp.Columns,
		FrameDelay: sp.FrameDelay,
	}
}

// NewPlayer creates the controllable character at the spec's start point.
// Its size is left at zero until the first viewport is applied, and its
// sprite stays empty until the sheet has loaded.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	e := w.CreateEntity()

	adds := []struct {
		name string
		fn   func() error
	}{
		{"player_tag", func() error { return ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}) }},
		{"transform", func() error {
			return ecs.Add(w, e, component.TransformComponent, component.Transform{Position: cp.Vector{X: spec.Start.X, Y: spec.Start.Y}})
		}},
		{"body", func() error { return ecs.Add(w, e, component.BodyComponent, component.Body{}) }},
		{"intent", func() error { return ecs.Add(w, e, component.IntentComponent, component.Intent{}) }},
		{"animation", func() error {
			return ecs.Add(w, e, component.AnimationComponent, component.Animation{Layout: SheetLayout(spec.Sprite)})
		}},
		{"sprite", func() error { return ecs.Add(w, e, component.SpriteComponent, component.Sprite{}) }},
	}
	for _, add := range adds {
		if err := add.fn(); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("player: add %s: %w", add.name, err)
		}
	}
	return e, nil
}
