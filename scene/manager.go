package scene

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrNoExit is returned by TransitionTo when the current scene has no
	// exit in the requested direction.
	ErrNoExit = errors.New("scene: no exit in that direction")
	// ErrComingSoon marks an exit that renders but doesn't lead anywhere yet.
	ErrComingSoon = errors.New("scene: exit not open yet")
	// ErrExternalTarget marks a wall exit whose target is a URL; wall exits
	// never hard-navigate, only vibeverse portals do.
	ErrExternalTarget = errors.New("scene: exit target is external")
)

// Manager owns the single current-scene reference and is the sole mutator of
// which scene is active.
type Manager struct {
	registry *Registry
	current  *Scene
}

func NewManager(registry *Registry) *Manager {
	return &Manager{registry: registry}
}

// Registry exposes the backing scene registry.
func (m *Manager) Registry() *Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Current returns the active scene, or nil before the first load.
func (m *Manager) Current() *Scene {
	if m == nil {
		return nil
	}
	return m.current
}

// CurrentID returns the active scene id, or "".
func (m *Manager) CurrentID() string {
	if s := m.Current(); s != nil {
		return s.ID
	}
	return ""
}

// LoadScene swaps the active scene, running the old scene's exit hook and
// the new scene's enter hook. Hook failures are logged, never fatal.
func (m *Manager) LoadScene(id string) error {
	if m == nil || m.registry == nil {
		return fmt.Errorf("scene: manager not initialized")
	}
	next, ok := m.registry.Get(id)
	if !ok {
		return fmt.Errorf("scene: unknown scene %q", id)
	}
	if m.current == next {
		return nil
	}

	if m.current != nil {
		if err := m.current.RunExit(); err != nil {
			log.WithError(err).Warnf("scene: %s onExit hook failed", m.current.ID)
		}
	}
	prev := m.CurrentID()
	m.current = next
	if err := next.RunEnter(); err != nil {
		log.WithError(err).Warnf("scene: %s onEnter hook failed", next.ID)
	}
	log.WithFields(log.Fields{"from": prev, "to": next.ID}).Info("scene loaded")
	return nil
}

// TransitionTo resolves the current scene's exit for a direction and loads
// its target. Coming-soon and URL targets return a sentinel error instead of
// navigating.
func (m *Manager) TransitionTo(d Direction) error {
	cur := m.Current()
	if cur == nil {
		return fmt.Errorf("scene: no active scene")
	}
	exit, ok := cur.ExitFor(d)
	if !ok {
		return ErrNoExit
	}
	if exit.ComingSoon || exit.To == ComingSoon {
		return ErrComingSoon
	}
	if exit.To == "" {
		return ErrNoExit
	}
	if !m.registry.Has(exit.To) {
		return ErrExternalTarget
	}
	return m.LoadScene(exit.To)
}
