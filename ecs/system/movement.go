package system

import (
	"math"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
)

const (
	jumpSpeed   = 4.0
	jumpGravity = 12.0
	wallMargin  = 0.5
)

// MovementSystem moves the player in grid space, clamps to the room bounds,
// and integrates the jump arc on Z.
type MovementSystem struct {
	scenes *scene.Manager
}

func NewMovementSystem(scenes *scene.Manager) *MovementSystem {
	return &MovementSystem{scenes: scenes}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
		return
	}
	cur := m.scenes.Current()
	if cur == nil {
		return
	}
	dt := w.Clock().DT

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	state, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}

	dx, dy := input.MoveX, input.MoveY
	if dx != 0 && dy != 0 {
		inv := 1 / math.Sqrt2
		dx *= inv
		dy *= inv
	}
	pt.GridX += dx * state.Speed * dt
	pt.GridY += dy * state.Speed * dt

	pt.GridX = clamp(pt.GridX, wallMargin, cur.Width-wallMargin)
	pt.GridY = clamp(pt.GridY, wallMargin, cur.Height-wallMargin)

	if input.JumpPressed && state.Grounded {
		state.VZ = jumpSpeed
		state.Grounded = false
	}
	if !state.Grounded {
		pt.Z += state.VZ * dt
		state.VZ -= jumpGravity * dt
		if pt.Z <= 0 {
			pt.Z = 0
			state.VZ = 0
			state.Grounded = true
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
