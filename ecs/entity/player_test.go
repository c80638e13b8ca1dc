package entity

import (
	"testing"

	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
	"github.com/milk9111/hop/prefabs"
	"github.com/milk9111/hop/viewport"
)

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	spec := prefabs.DefaultPlayerSpec()

	if _, err := NewStage(w, spec.Viewport.Config()); err != nil {
		t.Fatalf("new stage: %v", err)
	}
	e, err := NewPlayer(w, spec)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	if first, ok := w.First(component.PlayerTagComponent.Kind()); !ok || first != e {
		t.Fatalf("player tag not found")
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok || tr.Position.X != 50 || tr.Position.Y != 0 {
		t.Fatalf("transform = %+v", tr)
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent)
	if !ok || anim.Layout.FrameCount != 5 || anim.Layout.Columns != 2 || anim.Frame != 0 {
		t.Fatalf("animation = %+v", anim)
	}
	for name, has := range map[string]bool{
		"body":   ecs.Has(w, e, component.BodyComponent),
		"intent": ecs.Has(w, e, component.IntentComponent),
		"sprite": ecs.Has(w, e, component.SpriteComponent),
	} {
		if !has {
			t.Fatalf("missing %s", name)
		}
	}
}

func TestNewStage(t *testing.T) {
	w := ecs.NewWorld()
	cfg := viewport.DefaultConfig()
	e, err := NewStage(w, cfg)
	if err != nil {
		t.Fatalf("new stage: %v", err)
	}
	stage, ok := ecs.Get(w, e, component.StageComponent)
	if !ok || stage.Config != cfg {
		t.Fatalf("stage = %+v", stage)
	}
}

func TestSheetLayout(t *testing.T) {
	got := SheetLayout(prefabs.SpriteSpec{FrameW: 32, FrameH: 48, FrameCount: 7, Columns: 3, FrameDelay: 4})
	want := component.SheetLayout{FrameW: 32, FrameH: 48, FrameCount: 7, Columns: 3, FrameDelay: 4}
	if got != want {
		t.Fatalf("layout = %+v, want %+v", got, want)
	}
}
