package component

import "github.com/AIalchemistART/AIalchemistsLAIR/scene"

// Input is the per-tick input snapshot written by the input system and read
// by everything else. Press-edge fields fire for exactly one tick per press.
type Input struct {
	MoveX float64
	MoveY float64

	JumpPressed     bool
	InteractPressed bool
	CopyPressed     bool

	// TransitionDir is the Shift+direction chord, consumed at most once per
	// press and cleared every tick so it never blocks ordinary movement.
	TransitionDir scene.Direction
}

var InputComponent = NewComponent[Input]()
