package scene

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Registry is the static mapping from scene id to room definition. It is
// built once at startup from the embedded scene files; Reload refreshes a
// single scene from disk when the watcher reports an edit.
type Registry struct {
	scenes map[string]*Scene
	order  []string
}

// NewRegistry loads and validates every embedded scene.
func NewRegistry() (*Registry, error) {
	files, err := SceneFiles()
	if err != nil {
		return nil, err
	}

	r := &Registry{scenes: make(map[string]*Scene, len(files))}
	for _, f := range files {
		name := strings.TrimSuffix(strings.TrimSuffix(f, ".yaml"), ".yml")
		s, err := loadScene(name)
		if err != nil {
			return nil, err
		}
		r.scenes[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	sort.Strings(r.order)

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func loadScene(name string) (*Scene, error) {
	data, err := LoadFile(name)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", name, err)
	}
	spec, err := ParseSpec(name, data)
	if err != nil {
		return nil, err
	}
	s, err := spec.Build()
	if err != nil {
		return nil, err
	}
	if spec.Hooks.Script != "" {
		hooks, err := newHookRuntime(spec.Hooks.Script)
		if err != nil {
			return nil, err
		}
		s.hooks = hooks
	}
	return s, nil
}

// validate enforces the registry invariant: every exit target is a known
// scene id, an external URL, or the coming-soon sentinel.
func (r *Registry) validate() error {
	for _, id := range r.order {
		s := r.scenes[id]
		for _, e := range s.Exits {
			if e.ComingSoon {
				continue
			}
			if !validTarget(r.scenes, e.To) {
				return fmt.Errorf("scene: %s has exit %s to unresolvable target %q", id, e.Direction, e.To)
			}
		}
	}
	return nil
}

// Get returns a scene by id.
func (r *Registry) Get(id string) (*Scene, bool) {
	if r == nil {
		return nil, false
	}
	s, ok := r.scenes[id]
	return s, ok
}

// Has reports whether id names a registered scene.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// IDs returns all scene ids in stable order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Scenes returns every scene in stable order.
func (r *Registry) Scenes() []*Scene {
	if r == nil {
		return nil
	}
	out := make([]*Scene, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.scenes[id])
	}
	return out
}

// Reload re-reads one scene definition from disk, keeping the old definition
// when the edit doesn't parse. Geometry changes apply on next load; entity
// placement is rebuilt by the caller.
func (r *Registry) Reload(name string) (*Scene, error) {
	if r == nil {
		return nil, fmt.Errorf("scene: nil registry")
	}
	s, err := loadScene(name)
	if err != nil {
		return nil, err
	}
	if _, known := r.scenes[s.ID]; !known {
		r.order = append(r.order, s.ID)
		sort.Strings(r.order)
	}
	r.scenes[s.ID] = s
	if err := r.validate(); err != nil {
		log.WithError(err).Warnf("scene: reload of %s broke a target, keeping it anyway", s.ID)
	}
	return s, nil
}
