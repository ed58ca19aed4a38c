package component

// PlayerTag marks the single player entity.
type PlayerTag struct{}

// Player holds player movement state. VZ is vertical velocity for the jump
// arc; Grounded gates portal entry.
type Player struct {
	Speed    float64
	VZ       float64
	Grounded bool
}

var PlayerTagComponent = NewComponent[PlayerTag]()
var PlayerComponent = NewComponent[Player]()
