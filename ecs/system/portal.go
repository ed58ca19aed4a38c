package system

import (
	"errors"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
	"github.com/AIalchemistART/AIalchemistsLAIR/portal"
	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
)

const (
	// DefaultPromptThreshold is the standard Chebyshev proximity threshold
	// for portal detection, in grid units.
	DefaultPromptThreshold = 0.5
	// portalReentryCooldown suppresses double-triggering per portal.
	portalReentryCooldown = 2.0
	// portalNavDelay defers navigation so the departure effect plays before
	// the boundary crossing. Fire-and-forget, never cancelled.
	portalNavDelay = 0.6
	// maxGroundedZ is the highest the player may be off the floor and still
	// count as grounded for portal entry.
	maxGroundedZ = 0.1
)

// PortalSystem detects proximity to vibeverse portals and runs the URL
// handoff protocol. Navigation itself is emitted as a request entity; the
// game loop owns the Navigator.
type PortalSystem struct {
	scenes  *scene.Manager
	session *portal.Session
	// copyFn receives a resolved destination when the player copies a
	// portal link; wired to the system clipboard by the game.
	copyFn func(string)
}

func NewPortalSystem(scenes *scene.Manager, session *portal.Session, copyFn func(string)) *PortalSystem {
	return &PortalSystem{scenes: scenes, session: session, copyFn: copyFn}
}

// NearbyPortals returns ids of portals in the scene within Chebyshev
// distance of the player. Per-portal PromptThreshold overrides are checked
// first; when any override matches, the standard-threshold scan is skipped
// entirely for this frame. A non-positive defaultThreshold falls back to
// each portal's own InteractionRange, then to DefaultPromptThreshold.
func (s *PortalSystem) NearbyPortals(w *ecs.World, gridX, gridY float64, sceneID string, defaultThreshold float64) []string {
	var overridden []string
	var standard []string

	ecs.ForEach(w, component.VibePortalComponent.Kind(), func(_ ecs.Entity, p *component.VibePortal) {
		if p.SceneID != sceneID {
			return
		}
		d := chebyshev(p.GridX-gridX, p.GridY-gridY)
		if p.PromptThreshold > 0 {
			if d <= p.PromptThreshold {
				overridden = append(overridden, p.ID)
			}
			return
		}
		threshold := defaultThreshold
		if threshold <= 0 {
			threshold = p.InteractionRange
		}
		if threshold <= 0 {
			threshold = DefaultPromptThreshold
		}
		if d <= threshold {
			standard = append(standard, p.ID)
		}
	})

	if len(overridden) > 0 {
		return overridden
	}
	return standard
}

func (s *PortalSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	clock := w.Clock()
	sceneID := s.scenes.CurrentID()

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())

	// Prompt visibility carries the override short-circuit: a matched
	// override darkens every standard-threshold prompt this frame.
	visible := make(map[string]bool)
	for _, id := range s.NearbyPortals(w, pt.GridX, pt.GridY, sceneID, 0) {
		visible[id] = true
	}

	ecs.ForEach(w, component.VibePortalComponent.Kind(), func(_ ecs.Entity, p *component.VibePortal) {
		// Fire any pending departure regardless of the player's position;
		// the delay exists only for the visual effect.
		if p.NavAt > 0 && clock.Now >= p.NavAt {
			req := ecs.CreateEntity(w)
			_ = ecs.Add(w, req, component.PortalNavRequestComponent.Kind(), &component.PortalNavRequest{
				PortalID: p.ID,
				URL:      p.NavURL,
			})
			p.NavAt = 0
			return
		}
		if p.SceneID != sceneID {
			p.PromptVisible = false
			return
		}

		d := chebyshev(p.GridX-pt.GridX, p.GridY-pt.GridY)
		p.PromptVisible = visible[p.ID]

		if p.PromptVisible && input != nil && input.CopyPressed {
			s.copyDestination(w, p)
		}

		if d <= p.EntryRange {
			s.tryEnter(w, p, pt, clock)
		}
	})
}

// tryEnter runs the entry guards and schedules the departure. Failure to
// resolve a destination surfaces a notice; the portal stays usable.
func (s *PortalSystem) tryEnter(w *ecs.World, p *component.VibePortal, pt *component.Transform, clock ecs.Clock) {
	if pt.Z > maxGroundedZ {
		return
	}
	if p.NavAt > 0 {
		return
	}
	if p.Entered && clock.Now-p.LastEntryAt < portalReentryCooldown {
		return
	}
	p.Entered = true
	p.LastEntryAt = clock.Now

	dest, err := s.session.ResolveDestination(p.Kind, p.TargetURL)
	if err != nil {
		log.WithError(err).WithField("portal", p.ID).Warn("portal entry failed")
		PushNotice(w, portalFailureText(err))
		return
	}

	p.NavURL = dest
	p.NavAt = clock.Now + portalNavDelay
	log.WithFields(log.Fields{"portal": p.ID, "url": dest}).Info("portal departure scheduled")
}

func (s *PortalSystem) copyDestination(w *ecs.World, p *component.VibePortal) {
	dest, err := s.session.ResolveDestination(p.Kind, p.TargetURL)
	if err != nil {
		PushNotice(w, portalFailureText(err))
		return
	}
	if s.copyFn != nil {
		s.copyFn(dest)
		PushNotice(w, "Portal link copied")
	}
}

func portalFailureText(err error) string {
	if errors.Is(err, portal.ErrNoReferrer) {
		return "This portal has no return destination yet"
	}
	return "The portal fizzles: nowhere to go"
}

func chebyshev(dx, dy float64) float64 {
	return math.Max(math.Abs(dx), math.Abs(dy))
}
