package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
)

// InputSystem snapshots the keyboard into the player's Input component once
// per tick. Directional transition chords use press-edge detection so a held
// chord fires exactly once, and the field is cleared every tick so held
// Shift never blocks ordinary movement keys.
type InputSystem struct{}

func NewInputSystem() *InputSystem { return &InputSystem{} }

// keyChord is the per-tick sample the chord resolver works on. Split out so
// the resolution rule is testable without a window.
type keyChord struct {
	shift        bool
	northPressed bool
	southPressed bool
	westPressed  bool
	eastPressed  bool
}

// chordDirection resolves Shift+W/A/S/D into a transition direction. The
// directional key must be on its press edge; simultaneous presses resolve in
// a fixed order so the result is deterministic.
func chordDirection(c keyChord) scene.Direction {
	if !c.shift {
		return ""
	}
	switch {
	case c.northPressed:
		return scene.North
	case c.southPressed:
		return scene.South
	case c.westPressed:
		return scene.West
	case c.eastPressed:
		return scene.East
	}
	return ""
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	chord := chordDirection(keyChord{
		shift:        shift,
		northPressed: inpututil.IsKeyJustPressed(ebiten.KeyW),
		southPressed: inpututil.IsKeyJustPressed(ebiten.KeyS),
		westPressed:  inpututil.IsKeyJustPressed(ebiten.KeyA),
		eastPressed:  inpututil.IsKeyJustPressed(ebiten.KeyD),
	})

	moveX, moveY := 0.0, 0.0
	if !shift {
		if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			moveX -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			moveX += 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			moveY -= 1
		}
		if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			moveY += 1
		}
	}

	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	interactPressed := inpututil.IsKeyJustPressed(ebiten.KeyE)
	copyPressed := inpututil.IsKeyJustPressed(ebiten.KeyC)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
		input.JumpPressed = jumpPressed
		input.InteractPressed = interactPressed
		input.CopyPressed = copyPressed
		input.TransitionDir = chord
	})
}
