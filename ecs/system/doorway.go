package system

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
	"github.com/AIalchemistART/AIalchemistsLAIR/spatial"
)

const (
	// doorwayProximity is the Euclidean grid distance under which a doorway
	// reacts to the player. Strict: exactly 3.0 is not near.
	doorwayProximity = 3.0
	// doorCloseDelay is how long proximity must stay false before a wall
	// door closes. Opening has no delay; the asymmetry keeps movement
	// responsive while killing flicker from boundary jitter.
	doorCloseDelay = 0.8
	// sceneChangeCooldown blocks re-triggering right after a transition.
	sceneChangeCooldown = 0.5
	// doorSwingRate is visual swing progress per second.
	doorSwingRate = 5.0
)

// DoorwaySystem maintains open/closed state for wall doors and triggers
// scene loads for floor doorways. Doorway entities exist for every registry
// scene; only those matching the current scene are updated.
type DoorwaySystem struct {
	scenes   *scene.Manager
	index    *spatial.Index
	cooldown float64
}

// NewDoorwaySystem builds the doorway state machine. A non-nil index narrows
// the per-tick scan to entities registered near the player.
func NewDoorwaySystem(scenes *scene.Manager, idx *spatial.Index) *DoorwaySystem {
	return &DoorwaySystem{scenes: scenes, index: idx}
}

// Cooldown returns the remaining transition cooldown in seconds.
func (s *DoorwaySystem) Cooldown() float64 {
	if s == nil {
		return 0
	}
	return s.cooldown
}

func (s *DoorwaySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	clock := w.Clock()
	if s.cooldown > 0 {
		s.cooldown -= clock.DT
	}

	sceneID := s.scenes.CurrentID()
	if sceneID == "" {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	// Broad phase: the spatial index hands back candidates within the
	// proximity radius; the strict Euclidean check below decides.
	var candidates map[ecs.Entity]struct{}
	if s.index != nil {
		hits := s.index.Nearby(pt.GridX, pt.GridY, doorwayProximity)
		candidates = make(map[ecs.Entity]struct{}, len(hits))
		for _, e := range hits {
			candidates[e] = struct{}{}
		}
	}

	ecs.ForEach(w, component.DoorwayComponent.Kind(), func(e ecs.Entity, d *component.Doorway) {
		if d.SceneID != sceneID {
			return
		}
		inRange := candidates == nil
		if !inRange {
			_, inRange = candidates[e]
		}
		near := inRange && math.Hypot(d.GridX-pt.GridX, d.GridY-pt.GridY) < doorwayProximity
		if d.IsWall {
			s.updateWallDoor(w, d, near, clock)
			return
		}
		s.updateFloorDoorway(w, d, near)
	})
}

// updateWallDoor runs the debounced open/close machine: open the same tick
// proximity becomes true, close only after doorCloseDelay of unbroken
// absence. Re-proximity before the deadline cancels the pending close.
func (s *DoorwaySystem) updateWallDoor(w *ecs.World, d *component.Doorway, near bool, clock ecs.Clock) {
	wasOpen := d.Open
	if near {
		d.Open = true
		d.CloseAt = 0
	} else if d.Open {
		if d.CloseAt == 0 {
			d.CloseAt = clock.Now + doorCloseDelay
		} else if clock.Now >= d.CloseAt {
			d.Open = false
			d.CloseAt = 0
		}
	}
	if d.Open != wasOpen {
		RequestRender(w)
	}

	target := 0.0
	if d.Open {
		target = 1.0
	}
	if d.Swing < target {
		d.Swing = math.Min(target, d.Swing+doorSwingRate*clock.DT)
	} else if d.Swing > target {
		d.Swing = math.Max(target, d.Swing-doorSwingRate*clock.DT)
	}
}

// updateFloorDoorway fires a scene change when the player stands in the
// trigger region. Wall doorways never pass through here; a coming-soon or
// unresolvable target renders inert and never navigates.
func (s *DoorwaySystem) updateFloorDoorway(w *ecs.World, d *component.Doorway, near bool) {
	if !near || s.cooldown > 0 || d.ComingSoon {
		return
	}
	if d.Target == "" || !s.scenes.Registry().Has(d.Target) {
		if d.WarnOnce() {
			log.WithFields(log.Fields{"scene": d.SceneID, "target": d.Target}).
				Warn("doorway has no resolvable target, leaving it inert")
		}
		return
	}

	req := ecs.CreateEntity(w)
	_ = ecs.Add(w, req, component.SceneChangeRequestComponent.Kind(), &component.SceneChangeRequest{
		Target: d.Target,
		Via:    "floor doorway",
	})
	s.cooldown = sceneChangeCooldown
}
