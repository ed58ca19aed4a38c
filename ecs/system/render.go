package system

import (
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
)

// RequestRender asks the game loop to repaint the cached scene layer before
// the next frame interval elapses.
func RequestRender(w *ecs.World) {
	if w == nil {
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.RenderRequestComponent.Kind(), &component.RenderRequest{})
}
