package system

import (
	"math"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
)

const defaultPromptRadius = 2.0

// InteractSystem shows prompts for props near the player and handles the
// interact press: media props request the overlay, trophies post a notice.
type InteractSystem struct {
	scenes *scene.Manager
}

func NewInteractSystem(scenes *scene.Manager) *InteractSystem {
	return &InteractSystem{scenes: scenes}
}

func (s *InteractSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	sceneID := s.scenes.CurrentID()

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	pressed := input != nil && input.InteractPressed

	ecs.ForEach2(w, component.PlacedObjectComponent.Kind(), component.InteractPromptComponent.Kind(),
		func(e ecs.Entity, obj *component.PlacedObject, prompt *component.InteractPrompt) {
			if obj.SceneID != sceneID {
				prompt.Visible = false
				return
			}
			radius := prompt.Radius
			if radius <= 0 {
				radius = defaultPromptRadius
			}
			prompt.Visible = math.Hypot(obj.GridX-pt.GridX, obj.GridY-pt.GridY) < radius
			if !prompt.Visible || !pressed {
				return
			}

			if media, ok := ecs.Get(w, e, component.MediaLinkComponent.Kind()); ok {
				req := ecs.CreateEntity(w)
				_ = ecs.Add(w, req, component.OverlayRequestComponent.Kind(), &component.OverlayRequest{
					Title: media.Title,
					URL:   media.URL,
					Kind:  media.Kind,
				})
				return
			}
			if trophy, ok := ecs.Get(w, e, component.TrophyComponent.Kind()); ok {
				label := trophy.Label
				if label == "" {
					label = "A gleaming trophy. Someone shipped something."
				}
				PushNotice(w, label)
			}
		})
}
