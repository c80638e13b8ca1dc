package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
	"github.com/rs/zerolog/log"
)

var scriptOutputs = []struct {
	name   string
	action component.Action
}{
	{"left", component.ActionLeft},
	{"right", component.ActionRight},
	{"jump", component.ActionJump},
}

// ScriptSystem runs a tengo script once per step to drive the player. The
// script reads x, y, width, viewport_width, grounded, facing_left and frame,
// keeps its own data in the state map, and sets left, right and jump. Only
// changes in those outputs are forwarded, so scripted and device input mix
// the way two keyboards would.
type ScriptSystem struct {
	name     string
	compiled *tengo.Compiled
	prev     component.Intent
	frame    int
	disabled bool
}

// NewScriptSystem compiles src. name is used in log messages.
func NewScriptSystem(name string, src []byte) (*ScriptSystem, error) {
	script := tengo.NewScript(src)
	for _, v := range []struct {
		name  string
		value any
	}{
		{"x", 0.0},
		{"y", 0.0},
		{"width", 0.0},
		{"viewport_width", 0.0},
		{"grounded", false},
		{"facing_left", false},
		{"frame", 0},
		{"state", map[string]any{}},
		{"left", false},
		{"right", false},
		{"jump", false},
	} {
		if err := script.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("script %s: add %s: %w", name, v.name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", name, err)
	}
	return &ScriptSystem{name: name, compiled: compiled}, nil
}

func (s *ScriptSystem) Update(w *ecs.World) {
	if s == nil || s.disabled {
		return
	}
	stage, ok := Stage(w)
	if !ok {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, okT := ecs.Get(w, player, component.TransformComponent)
	b, okB := ecs.Get(w, player, component.BodyComponent)
	in, okI := ecs.Get(w, player, component.IntentComponent)
	if !okT || !okB || !okI {
		return
	}

	s.frame++
	out, err := s.run(map[string]any{
		"x":              t.Position.X,
		"y":              t.Position.Y,
		"width":          b.Width,
		"viewport_width": stage.Metrics.Width,
		"grounded":       b.Grounded,
		"facing_left":    b.FacingLeft,
		"frame":          s.frame,
	})
	if err != nil {
		s.disabled = true
		log.Error().Err(err).Str("component", "script").Str("script", s.name).Msg("script disabled")
		return
	}

	for _, o := range scriptOutputs {
		on := out.Active(o.action)
		if on != s.prev.Active(o.action) {
			in.Set(o.action, on)
		}
	}
	s.prev = out
}

func (s *ScriptSystem) run(vars map[string]any) (component.Intent, error) {
	for name, v := range vars {
		if err := s.compiled.Set(name, v); err != nil {
			return component.Intent{}, err
		}
	}
	for _, o := range scriptOutputs {
		if err := s.compiled.Set(o.name, false); err != nil {
			return component.Intent{}, err
		}
	}
	if err := s.compiled.Run(); err != nil {
		return component.Intent{}, err
	}

	var out component.Intent
	for _, o := range scriptOutputs {
		out.Set(o.action, s.compiled.Get(o.name).Bool())
	}
	return out, nil
}

// Disabled reports whether a runtime error switched the script off.
func (s *ScriptSystem) Disabled() bool {
	return s == nil || s.disabled
}
