package component

// One-shot request entities: systems only emit data, the outer Game loop
// owns IO and scene reinitialization. Each request entity is destroyed by
// its consumer.

// SceneChangeRequest asks the game loop to load another scene.
type SceneChangeRequest struct {
	Target string
	// Via records what triggered the change, for logging.
	Via string
}

// PortalNavRequest asks the game loop to hand a URL to the Navigator. This
// is the hard boundary crossing out of the process, not a scene swap.
type PortalNavRequest struct {
	PortalID string
	URL      string
}

// OverlayRequest asks the game loop to open the media overlay.
type OverlayRequest struct {
	Title string
	URL   string
	Kind  string
}

// RenderRequest flags that the cached scene image must be redrawn before the
// next frame regardless of the frame interval.
type RenderRequest struct{}

// Notice is a user-visible HUD message. ExpiresAt is stamped by the notice
// system on first sight.
type Notice struct {
	Text      string
	ExpiresAt float64
}

var SceneChangeRequestComponent = NewComponent[SceneChangeRequest]()
var PortalNavRequestComponent = NewComponent[PortalNavRequest]()
var OverlayRequestComponent = NewComponent[OverlayRequest]()
var RenderRequestComponent = NewComponent[RenderRequest]()
var NoticeComponent = NewComponent[Notice]()
