package component

// Transform is a grid-space position. Z is height above the floor, used for
// the jump arc; portals only accept grounded players.
type Transform struct {
	GridX float64
	GridY float64
	Z     float64
}

var TransformComponent = NewComponent[Transform]()
