package ecs

import (
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
)

// Clock is the world's monotonic tick clock. Now is seconds since the world
// started ticking, DT the length of the current tick. Systems read deferred
// deadlines against Now instead of holding timer handles.
type Clock struct {
	Now float64
	DT  float64
}

// World owns entities and component tables. It is not safe for concurrent
// use; everything mutates from the single frame-update path.
type World struct {
	nextID entityID
	gens   []generation
	alive  []bool
	free   []entityID

	stores map[component.ComponentID]*sparseSet

	clock Clock
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*sparseSet),
	}
}

// Advance moves the world clock forward one tick.
func (w *World) Advance(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	w.clock.DT = dt
	w.clock.Now += dt
}

// Clock returns the current tick clock.
func (w *World) Clock() Clock {
	if w == nil {
		return Clock{}
	}
	return w.clock
}

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.nextID++
		id = w.nextID
		w.gens = append(w.gens, 0)
		w.alive = append(w.alive, false)
	}
	w.alive[id-1] = true
	return makeEntity(id, w.gens[id-1])
}

// DestroyEntity invalidates a handle and removes its components. It returns
// false when the handle was already stale.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, s := range w.stores {
		s.remove(id)
	}
	w.gens[id-1]++
	w.alive[id-1] = false
	w.free = append(w.free, id)
	return true
}

// IsAlive reports whether a handle still refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if id == 0 || int(id) > len(w.gens) {
		return false
	}
	return w.alive[id-1] && w.gens[id-1] == e.generation()
}

// Entities returns handles for every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.gens))
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.gens[i]))
		}
	}
	return out
}

// Query returns entities holding every listed component kind.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	base := w.stores[ids[0]]
	if base == nil {
		return nil
	}
	out := make([]Entity, 0, len(base.dense))
	for _, id := range base.dense {
		match := true
		for _, cid := range ids[1:] {
			s := w.stores[cid]
			if s == nil || !s.has(id) {
				match = false
				break
			}
		}
		if match && w.alive[id-1] {
			out = append(out, makeEntity(id, w.gens[id-1]))
		}
	}
	return out
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}
