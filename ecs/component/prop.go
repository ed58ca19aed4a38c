package component

import (
	"github.com/tanema/gween"
)

// PlacedObject is the core record for a static scene prop. Capabilities are
// separate components rather than a type hierarchy: add Glow for the pulse,
// InteractPrompt for the hover text, MediaLink to open the overlay.
type PlacedObject struct {
	SceneID string
	Name    string
	Kind    string
	GridX   float64
	GridY   float64
}

// Glow pulses an entity's highlight between Min and Max over Period seconds.
type Glow struct {
	Color  string
	Min    float64
	Max    float64
	Period float64

	// Level is the current pulse value, driven by the glow system.
	Level float64

	Tween  *gween.Tween
	Rising bool
}

// InteractPrompt shows Text when the player is within Radius.
type InteractPrompt struct {
	Text    string
	Radius  float64
	Visible bool
}

// MediaLink opens external content in the media overlay on interaction.
type MediaLink struct {
	Title string
	URL   string
	Kind  string
}

// Trophy marks a prop that reacts to interaction with a flavor notice.
type Trophy struct {
	Label string
}

var PlacedObjectComponent = NewComponent[PlacedObject]()
var GlowComponent = NewComponent[Glow]()
var InteractPromptComponent = NewComponent[InteractPrompt]()
var MediaLinkComponent = NewComponent[MediaLink]()
var TrophyComponent = NewComponent[Trophy]()
