package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/hop/ecs/component"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// World owns entities and their component storage.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes all components of e and retires its handle.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether e is a live handle.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) addComponent(e Entity, id component.ComponentID, v any) error {
	if id == 0 {
		return ErrInvalidKind
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("add component %d to %s: %w", id, e, ErrEntityNotAlive)
	}
	w.store(id).Set(e, v)
	return nil
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s, ok := w.stores[id]
	if !ok || !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	s, ok := w.stores[id]
	if !ok {
		return false
	}
	return s.Remove(e)
}

// Query returns the live entities that have every given kind, in the
// insertion order of the first kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	first, ok := w.stores[kinds[0].ID()]
	if !ok {
		return nil
	}
	out := make([]Entity, 0, first.Len())
	for _, e := range first.Entities() {
		match := true
		for _, k := range kinds[1:] {
			s, ok := w.stores[k.ID()]
			if !ok || !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity with kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok || s.Len() == 0 {
		return 0, false
	}
	return s.Entities()[0], true
}
