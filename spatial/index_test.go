package spatial

import (
	"testing"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
)

func containsEntity(ents []ecs.Entity, e ecs.Entity) bool {
	for _, v := range ents {
		if v == e {
			return true
		}
	}
	return false
}

func TestIndexNearby(t *testing.T) {
	w := ecs.NewWorld()
	idx := NewIndex()

	e1 := ecs.CreateEntity(w)
	e2 := ecs.CreateEntity(w)
	idx.AddEntity(e1, 2, 2)
	idx.AddEntity(e2, 8, 8)

	near := idx.Nearby(2, 2, 1)
	if !containsEntity(near, e1) || containsEntity(near, e2) {
		t.Fatalf("Nearby(2,2,1) = %v, want only e1", near)
	}

	all := idx.Nearby(5, 5, 10)
	if !containsEntity(all, e1) || !containsEntity(all, e2) {
		t.Fatalf("Nearby(5,5,10) = %v, want both", all)
	}

	if got := idx.Nearby(2, 2, 0); got != nil {
		t.Fatalf("non-positive radius should return nil, got %v", got)
	}
}

func TestIndexReaddMoves(t *testing.T) {
	w := ecs.NewWorld()
	idx := NewIndex()

	e := ecs.CreateEntity(w)
	idx.AddEntity(e, 2, 2)
	idx.AddEntity(e, 9, 9)

	if containsEntity(idx.Nearby(2, 2, 1), e) {
		t.Fatal("entity should no longer be at the old position")
	}
	if !containsEntity(idx.Nearby(9, 9, 1), e) {
		t.Fatal("entity should be at the new position")
	}
	x, y, ok := idx.Position(e)
	if !ok || x != 9 || y != 9 {
		t.Fatalf("Position = (%v, %v, %v), want (9, 9, true)", x, y, ok)
	}
}

func TestIndexRemove(t *testing.T) {
	w := ecs.NewWorld()
	idx := NewIndex()

	e := ecs.CreateEntity(w)
	idx.AddEntity(e, 4, 4)
	idx.RemoveEntity(e)

	if containsEntity(idx.Nearby(4, 4, 1), e) {
		t.Fatal("removed entity should not be returned")
	}
	if _, _, ok := idx.Position(e); ok {
		t.Fatal("removed entity should have no position")
	}
	// Removing twice is harmless.
	idx.RemoveEntity(e)
}
