package component

import "github.com/AIalchemistART/AIalchemistsLAIR/scene"

// WallSide is the wall plane a doorway renders into. The renderer only
// supports the north and west planes per room, so all four cardinal exit
// directions collapse onto these two, distinguished by position along the
// wall.
type WallSide string

const (
	WallSideNorth WallSide = "north"
	WallSideWest  WallSide = "west"
)

// WallSideFor maps an exit direction onto its rendered wall plane:
// north/south exits attach to the north plane, east/west to the west plane.
// This is a convention of the visual engine, preserved exactly.
func WallSideFor(d scene.Direction) WallSide {
	switch d {
	case scene.East, scene.West:
		return WallSideWest
	default:
		return WallSideNorth
	}
}

// Doorway is one exit instance, built once per registry exit at startup and
// reused for the process lifetime. Wall doorways carry the debounced
// open/close state; floor doorways are pure trigger regions.
type Doorway struct {
	SceneID    string
	Direction  scene.Direction
	Target     string
	GridX      float64
	GridY      float64
	IsWall     bool
	WallSide   WallSide
	ComingSoon bool

	// Open/close state machine (wall doorways only). Opening is instant on
	// proximity; closing waits out CloseAt, a pending deadline on the world
	// clock that re-proximity clears.
	Open    bool
	CloseAt float64

	// Swing is the 0..1 visual door swing progress, tweened toward Open.
	Swing float64

	// warned suppresses repeat logging for unresolvable targets.
	warned bool
}

// WarnOnce reports true the first time it is called for this doorway.
func (d *Doorway) WarnOnce() bool {
	if d == nil || d.warned {
		return false
	}
	d.warned = true
	return true
}

var DoorwayComponent = NewComponent[Doorway]()
