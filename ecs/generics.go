package ecs

import "github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"

// Add attaches a component value to an entity, replacing any existing one.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID()).set(e.id(), v)
	return nil
}

// Get returns the entity's component, or (nil, false).
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if !k.Valid() || !IsAlive(w, e) {
		return nil, false
	}
	s, ok := w.stores[k.ID()]
	if !ok {
		return nil, false
	}
	v, ok := s.get(e.id()).(*T)
	if !ok {
		return nil, false
	}
	return v, true
}

// Has reports whether the entity holds the component.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if !k.Valid() || !IsAlive(w, e) {
		return false
	}
	s, ok := w.stores[k.ID()]
	return ok && s.has(e.id())
}

// Remove detaches the component from the entity if present.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if !k.Valid() || !IsAlive(w, e) {
		return false
	}
	s, ok := w.stores[k.ID()]
	if !ok {
		return false
	}
	return s.remove(e.id())
}

// First returns any one entity holding the component. Useful for singletons
// like the player tag or one-shot request entities.
func First[T any](w *World, k component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !k.Valid() {
		return 0, false
	}
	s, ok := w.stores[k.ID()]
	if !ok {
		return 0, false
	}
	for _, id := range s.dense {
		if w.alive[id-1] {
			return makeEntity(id, w.gens[id-1]), true
		}
	}
	return 0, false
}

// ForEach visits every entity holding the component. The callback receives a
// pointer; mutations stick without a write-back.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	s, ok := w.stores[k.ID()]
	if !ok {
		return
	}
	// Snapshot the dense list so callbacks may add/destroy entities.
	ids := append([]entityID(nil), s.dense...)
	for _, id := range ids {
		if int(id) > len(w.alive) || !w.alive[id-1] || !s.has(id) {
			continue
		}
		v, ok := s.get(id).(*T)
		if !ok {
			continue
		}
		fn(makeEntity(id, w.gens[id-1]), v)
	}
}

// ForEach2 visits every entity holding both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}
