package entity

import (
	"testing"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
	"github.com/AIalchemistART/AIalchemistsLAIR/spatial"
)

func TestBuildPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e := BuildPlayer(w, 8, 10)

	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		t.Fatal("player should carry the tag")
	}
	pt, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || pt.GridX != 8 || pt.GridY != 10 {
		t.Fatalf("transform = %+v ok=%v, want (8, 10)", pt, ok)
	}
	state, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !state.Grounded || state.Speed <= 0 {
		t.Fatalf("player state = %+v, want grounded with positive speed", state)
	}
	if !ecs.Has(w, e, component.InputComponent.Kind()) {
		t.Fatal("player should carry an input snapshot")
	}
}

func TestBuildRegistryEntities(t *testing.T) {
	reg, err := scene.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	w := ecs.NewWorld()
	idx := spatial.NewIndex()
	BuildRegistryEntities(w, reg, idx)

	wantDoorways := 0
	wantPortals := 0
	for _, s := range reg.Scenes() {
		wantDoorways += len(s.Exits)
		wantPortals += len(s.Portals)
	}

	doorways := 0
	ecs.ForEach(w, component.DoorwayComponent.Kind(), func(e ecs.Entity, d *component.Doorway) {
		doorways++
		if d.Direction.Cardinal() != d.IsWall {
			t.Fatalf("doorway %+v: cardinal direction and wall flag disagree", d)
		}
		if d.IsWall && d.WallSide != component.WallSideFor(d.Direction) {
			t.Fatalf("doorway %+v: wrong wall side", d)
		}
		if _, _, ok := idx.Position(e); !ok {
			t.Fatalf("doorway %+v not registered in the spatial index", d)
		}
	})
	if doorways != wantDoorways {
		t.Fatalf("built %d doorways, want %d", doorways, wantDoorways)
	}

	portals := 0
	ecs.ForEach(w, component.VibePortalComponent.Kind(), func(e ecs.Entity, p *component.VibePortal) {
		portals++
		if p.EntryRange > p.InteractionRange {
			t.Fatalf("portal %s: entry range exceeds interaction range", p.ID)
		}
		if !ecs.Has(w, e, component.GlowComponent.Kind()) {
			t.Fatalf("portal %s should glow", p.ID)
		}
	})
	if portals != wantPortals {
		t.Fatalf("built %d portals, want %d", portals, wantPortals)
	}

	// Trophies get their capability component from the object kind.
	trophies := 0
	ecs.ForEach2(w, component.PlacedObjectComponent.Kind(), component.TrophyComponent.Kind(),
		func(_ ecs.Entity, obj *component.PlacedObject, _ *component.Trophy) {
			if obj.Kind != "trophy" {
				t.Fatalf("non-trophy prop %q carries the trophy component", obj.Name)
			}
			trophies++
		})
	if trophies == 0 {
		t.Fatal("expected at least one trophy prop")
	}
}
