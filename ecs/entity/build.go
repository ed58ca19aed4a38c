// Package entity assembles world entities from scene registry data.
package entity

import (
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
	"github.com/AIalchemistART/AIalchemistsLAIR/portal"
	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
	"github.com/AIalchemistART/AIalchemistsLAIR/spatial"
)

const playerSpeed = 5.0

// BuildPlayer creates the player entity at a spawn position.
func BuildPlayer(w *ecs.World, gridX, gridY float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{GridX: gridX, GridY: gridY})
	_ = ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Speed: playerSpeed, Grounded: true})
	_ = ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
	return e
}

// BuildRegistryEntities walks every scene in the registry once and creates
// its doorways, portals, and props. Doorway entities live for the process
// lifetime; systems filter them by scene id each tick.
func BuildRegistryEntities(w *ecs.World, reg *scene.Registry, idx *spatial.Index) {
	for _, s := range reg.Scenes() {
		for _, exit := range s.Exits {
			buildDoorway(w, idx, s.ID, exit)
		}
		for _, p := range s.Portals {
			buildPortal(w, idx, s.ID, p)
		}
		for _, obj := range s.Objects {
			buildObject(w, idx, s.ID, obj)
		}
	}
}

func buildDoorway(w *ecs.World, idx *spatial.Index, sceneID string, exit scene.Exit) ecs.Entity {
	e := ecs.CreateEntity(w)
	d := &component.Doorway{
		SceneID:    sceneID,
		Direction:  exit.Direction,
		Target:     exit.To,
		GridX:      exit.GridX,
		GridY:      exit.GridY,
		ComingSoon: exit.ComingSoon,
	}
	if exit.Direction.Cardinal() {
		d.IsWall = true
		d.WallSide = component.WallSideFor(exit.Direction)
	}
	_ = ecs.Add(w, e, component.DoorwayComponent.Kind(), d)
	if idx != nil {
		idx.AddEntity(e, d.GridX, d.GridY)
	}
	return e
}

func buildPortal(w *ecs.World, idx *spatial.Index, sceneID string, p scene.Portal) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.VibePortalComponent.Kind(), &component.VibePortal{
		ID:               p.ID,
		SceneID:          sceneID,
		Kind:             portal.Kind(p.Kind),
		GridX:            p.GridX,
		GridY:            p.GridY,
		TargetURL:        p.TargetURL,
		InteractionRange: p.InteractionRange,
		EntryRange:       p.EntryRange,
		PromptThreshold:  p.PromptThreshold,
	})
	// Portals glow like props do.
	_ = ecs.Add(w, e, component.GlowComponent.Kind(), &component.Glow{Color: "#9a5cff"})
	if idx != nil {
		idx.AddEntity(e, p.GridX, p.GridY)
	}
	return e
}

func buildObject(w *ecs.World, idx *spatial.Index, sceneID string, obj scene.Object) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PlacedObjectComponent.Kind(), &component.PlacedObject{
		SceneID: sceneID,
		Name:    obj.Name,
		Kind:    obj.Kind,
		GridX:   obj.GridX,
		GridY:   obj.GridY,
	})
	if obj.Glow {
		_ = ecs.Add(w, e, component.GlowComponent.Kind(), &component.Glow{Color: obj.Color})
	}
	if obj.Prompt != "" {
		_ = ecs.Add(w, e, component.InteractPromptComponent.Kind(), &component.InteractPrompt{Text: obj.Prompt})
	}
	if obj.MediaURL != "" {
		_ = ecs.Add(w, e, component.MediaLinkComponent.Kind(), &component.MediaLink{
			Title: obj.MediaTitle,
			URL:   obj.MediaURL,
			Kind:  obj.MediaKind,
		})
	}
	if obj.Kind == "trophy" {
		_ = ecs.Add(w, e, component.TrophyComponent.Kind(), &component.Trophy{})
	}
	if idx != nil {
		idx.AddEntity(e, obj.GridX, obj.GridY)
	}
	return e
}
