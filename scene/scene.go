package scene

// Direction is a cardinal exit direction as authored in scene YAML.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Cardinal reports whether d is one of the four authored directions.
func (d Direction) Cardinal() bool {
	switch d {
	case North, South, East, West:
		return true
	}
	return false
}

// ComingSoon is the sentinel exit target for doors that render but lead
// nowhere yet.
const ComingSoon = "comingSoon"

// GridCells is the logical room span used when deriving grid coordinates
// from authored pixel positions.
const GridCells = 16.0

// Scene is one room definition resolved from its YAML spec.
type Scene struct {
	ID          string
	DisplayName string

	// Room span in grid units.
	Width  float64
	Height float64

	// Authoring canvas size in pixels, used only to derive grid positions
	// for exits that carry a pixel position instead of gridX/gridY.
	PixelWidth  float64
	PixelHeight float64

	SpawnX float64
	SpawnY float64

	Exits   []Exit
	Objects []Object
	Portals []Portal

	hooks *hookRuntime
}

// Exit is a directional connection out of a scene. To is a scene id, an
// external URL, or the ComingSoon sentinel.
type Exit struct {
	Direction  Direction
	To         string
	GridX      float64
	GridY      float64
	ComingSoon bool
}

// Object is a static placed prop. Capabilities are data-driven: a prop with
// a MediaURL opens the media overlay, one with a Prompt shows interaction
// text, Glow adds the pulse effect.
type Object struct {
	Name   string
	Kind   string
	GridX  float64
	GridY  float64
	Glow   bool
	Color  string
	Prompt string

	MediaTitle string
	MediaURL   string
	MediaKind  string
}

// Portal is a vibeverse portal placement. EntryRange is the tighter radius
// that actually triggers departure; InteractionRange only shows the prompt.
type Portal struct {
	ID    string
	Kind  string // "start" or "exit"
	GridX float64
	GridY float64

	TargetURL        string
	InteractionRange float64
	EntryRange       float64

	// PromptThreshold overrides the caller-supplied default proximity
	// threshold for this portal when > 0.
	PromptThreshold float64
}

// ExitFor returns the scene's exit for a direction, if any.
func (s *Scene) ExitFor(d Direction) (Exit, bool) {
	if s == nil {
		return Exit{}, false
	}
	for _, e := range s.Exits {
		if e.Direction == d {
			return e, true
		}
	}
	return Exit{}, false
}
