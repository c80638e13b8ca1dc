package ecs

import "github.com/milk9111/hop/ecs/component"

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	v := value
	return w.addComponent(e, handle.Kind().ID(), &v)
}

// Get returns a pointer to e's component; mutations are visible to later
// readers.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.getComponent(e, handle.Kind().ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// Has reports whether e has the component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := w.getComponent(e, handle.Kind().ID())
	return ok
}

// Remove detaches the component.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.removeComponent(e, handle.Kind().ID())
}

// ForEach visits every entity that has kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		value, ok := w.getComponent(e, kind.ID())
		if !ok {
			continue
		}
		if cast, ok := value.(*T); ok {
			fn(e, cast)
		}
	}
}

// ForEach2 visits every entity that has both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		va, _ := w.getComponent(e, ka.ID())
		vb, _ := w.getComponent(e, kb.ID())
		a, okA := va.(*A)
		b, okB := vb.(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
