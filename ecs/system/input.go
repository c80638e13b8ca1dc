package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hop/controls"
	"github.com/milk9111/hop/ecs"
	"github.com/milk9111/hop/ecs/component"
	"github.com/milk9111/hop/prefabs"
)

// KeyState reports key transitions since the previous tick.
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// PointerSource samples active pointers in logical viewport pixels.
type PointerSource interface {
	Pointers() []controls.Pointer
}

// Bindings maps each action to the keys that raise it.
type Bindings map[component.Action][]ebiten.Key

// ParseBindings resolves key names such as "ArrowLeft" or "Space".
func ParseBindings(spec prefabs.KeysSpec) (Bindings, error) {
	b := Bindings{}
	for action, names := range map[component.Action][]string{
		component.ActionLeft:  spec.Left,
		component.ActionRight: spec.Right,
		component.ActionJump:  spec.Jump,
	} {
		for _, name := range names {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("bind %s to %q: %w", action, name, err)
			}
			b[action] = append(b[action], k)
		}
	}
	return b, nil
}

type intentChange struct {
	action component.Action
	on     bool
}

// InputSystem turns key and pointer transitions into intent changes, in the
// order they happened, the same way discrete key-down/key-up and
// pointer-down/up/leave events would.
type InputSystem struct {
	keys     KeyState
	bindings Bindings
	pointers PointerSource
	pad      *controls.Pad

	pending []intentChange
}

// NewInputSystem wires the sources. keys, pointers and pad may each be nil;
// an absent source simply contributes nothing.
func NewInputSystem(keys KeyState, bindings Bindings, pointers PointerSource, pad *controls.Pad) *InputSystem {
	s := &InputSystem{keys: keys, bindings: bindings, pointers: pointers, pad: pad}
	s.bindPad()
	return s
}

// Pad returns the on-screen controls, if any.
func (s *InputSystem) Pad() *controls.Pad {
	return s.pad
}

// SetBindings swaps the key map. Keys held across the swap are released
// by the next key-up of whatever they are bound to now.
func (s *InputSystem) SetBindings(b Bindings) {
	s.bindings = b
}

func (s *InputSystem) bindPad() {
	if s.pad == nil {
		return
	}
	if b := s.pad.Left; b != nil {
		b.OnDown = s.raise(component.ActionLeft, true)
		b.OnUp = s.raise(component.ActionLeft, false)
		b.OnLeave = s.raise(component.ActionLeft, false)
	}
	if b := s.pad.Right; b != nil {
		b.OnDown = s.raise(component.ActionRight, true)
		b.OnUp = s.raise(component.ActionRight, false)
		b.OnLeave = s.raise(component.ActionRight, false)
	}
	if b := s.pad.Jump; b != nil {
		b.OnDown = s.raise(component.ActionJump, true)
		b.OnUp = s.raise(component.ActionJump, false)
	}
	if j := s.pad.Stick; j != nil {
		j.OnChange = func(left, right bool) {
			s.push(component.ActionLeft, left)
			s.push(component.ActionRight, right)
		}
	}
}

func (s *InputSystem) raise(a component.Action, on bool) func() {
	return func() { s.push(a, on) }
}

func (s *InputSystem) push(a component.Action, on bool) {
	s.pending = append(s.pending, intentChange{action: a, on: on})
}

func (s *InputSystem) Update(w *ecs.World) {
	if s.pad != nil && s.pointers != nil {
		s.pad.Update(s.pointers.Pointers())
	}

	if s.keys != nil {
		for _, action := range []component.Action{component.ActionLeft, component.ActionRight, component.ActionJump} {
			for _, k := range s.bindings[action] {
				if s.keys.JustPressed(k) {
					s.push(action, true)
				}
				if s.keys.JustReleased(k) {
					s.push(action, false)
				}
			}
		}
	}

	if len(s.pending) == 0 {
		return
	}
	ecs.ForEach(w, component.IntentComponent.Kind(), func(e ecs.Entity, in *component.Intent) {
		for _, c := range s.pending {
			in.Set(c.action, c.on)
		}
	})
	s.pending = s.pending[:0]
}
