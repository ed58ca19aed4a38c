package component

import "github.com/AIalchemistART/AIalchemistsLAIR/portal"

// VibePortal is one vibeverse portal placement. EntryRange is the tighter
// radius that triggers departure; InteractionRange only lights the prompt.
// Invariant (enforced at scene load): EntryRange <= InteractionRange.
type VibePortal struct {
	ID      string
	SceneID string
	Kind    portal.Kind
	GridX   float64
	GridY   float64

	// TargetURL is the configured destination. Start portals ignore it and
	// resolve from the arrival ref at interaction time.
	TargetURL string

	InteractionRange float64
	EntryRange       float64

	// PromptThreshold overrides the default proximity threshold for prompt
	// detection when > 0.
	PromptThreshold float64

	// Re-entry cooldown bookkeeping against the world clock.
	Entered     bool
	LastEntryAt float64

	// Pending departure: the navigation fires at NavAt (fire-and-forget, not
	// cancellable) so the fade effect can play first.
	NavAt  float64
	NavURL string

	PromptVisible bool
}

var VibePortalComponent = NewComponent[VibePortal]()
