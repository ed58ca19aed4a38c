package scene

import (
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneSpec is the YAML shape of one room file under scenes/.
type SceneSpec struct {
	Name        string       `yaml:"name"`
	DisplayName string       `yaml:"display_name"`
	Width       float64      `yaml:"width"`
	Height      float64      `yaml:"height"`
	PixelWidth  float64      `yaml:"pixel_width"`
	PixelHeight float64      `yaml:"pixel_height"`
	Spawn       *PositionSpec `yaml:"spawn"`
	Exits       []ExitSpec   `yaml:"exits"`
	Objects     []ObjectSpec `yaml:"objects"`
	Portals     []PortalSpec `yaml:"portals"`
	Hooks       HooksSpec    `yaml:"hooks"`
}

type PositionSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ExitSpec struct {
	Direction  string        `yaml:"direction"`
	To         string        `yaml:"to"`
	Position   *PositionSpec `yaml:"position"`
	GridX      *float64      `yaml:"gridX"`
	GridY      *float64      `yaml:"gridY"`
	ComingSoon bool          `yaml:"comingSoon"`
}

type ObjectSpec struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	GridX  float64 `yaml:"gridX"`
	GridY  float64 `yaml:"gridY"`
	Glow   bool    `yaml:"glow"`
	Color  string  `yaml:"color"`
	Prompt string  `yaml:"prompt"`
	Media  *MediaSpec `yaml:"media"`
}

type MediaSpec struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
	Kind  string `yaml:"kind"`
}

type PortalSpec struct {
	ID               string  `yaml:"id"`
	Kind             string  `yaml:"kind"`
	GridX            float64 `yaml:"gridX"`
	GridY            float64 `yaml:"gridY"`
	TargetURL        string  `yaml:"target_url"`
	InteractionRange float64 `yaml:"interaction_range"`
	EntryRange       float64 `yaml:"entry_range"`
	PromptThreshold  float64 `yaml:"prompt_threshold"`
}

type HooksSpec struct {
	Script string `yaml:"script"`
}

// ParseSpec unmarshals one scene YAML document.
func ParseSpec(name string, data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("scene: unmarshal %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = name
	}
	return &spec, nil
}

// Defaults applied when a spec omits a field.
const (
	defaultGridSpan         = 16.0
	defaultPixelSpan        = 1024.0
	defaultInteractionRange = 2.5
	defaultEntryRange       = 1.0
)

// Build resolves a spec into a Scene, deriving grid positions and applying
// range defaults. Hook scripts are compiled separately by the registry.
func (sp *SceneSpec) Build() (*Scene, error) {
	if sp == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}
	s := &Scene{
		ID:          sp.Name,
		DisplayName: sp.DisplayName,
		Width:       sp.Width,
		Height:      sp.Height,
		PixelWidth:  sp.PixelWidth,
		PixelHeight: sp.PixelHeight,
	}
	if s.DisplayName == "" {
		s.DisplayName = s.ID
	}
	if s.Width <= 0 {
		s.Width = defaultGridSpan
	}
	if s.Height <= 0 {
		s.Height = defaultGridSpan
	}
	if s.PixelWidth <= 0 {
		s.PixelWidth = defaultPixelSpan
	}
	if s.PixelHeight <= 0 {
		s.PixelHeight = defaultPixelSpan
	}
	if sp.Spawn != nil {
		s.SpawnX, s.SpawnY = sp.Spawn.X, sp.Spawn.Y
	} else {
		s.SpawnX, s.SpawnY = s.Width/2, s.Height/2
	}

	for i, es := range sp.Exits {
		exit, err := buildExit(s, es)
		if err != nil {
			return nil, fmt.Errorf("scene: %s exit %d: %w", s.ID, i, err)
		}
		s.Exits = append(s.Exits, exit)
	}

	for _, os := range sp.Objects {
		obj := Object{
			Name:   os.Name,
			Kind:   os.Kind,
			GridX:  os.GridX,
			GridY:  os.GridY,
			Glow:   os.Glow,
			Color:  os.Color,
			Prompt: os.Prompt,
		}
		if os.Media != nil {
			obj.MediaTitle = os.Media.Title
			obj.MediaURL = os.Media.URL
			obj.MediaKind = os.Media.Kind
		}
		s.Objects = append(s.Objects, obj)
	}

	for i, ps := range sp.Portals {
		p, err := buildPortal(s.ID, i, ps)
		if err != nil {
			return nil, err
		}
		s.Portals = append(s.Portals, p)
	}

	return s, nil
}

func buildExit(s *Scene, es ExitSpec) (Exit, error) {
	dir := Direction(strings.ToLower(strings.TrimSpace(es.Direction)))
	if !dir.Cardinal() && dir != "" {
		return Exit{}, fmt.Errorf("unknown direction %q", es.Direction)
	}
	if es.To == "" && !es.ComingSoon {
		return Exit{}, fmt.Errorf("exit has no target")
	}

	exit := Exit{
		Direction:  dir,
		To:         es.To,
		ComingSoon: es.ComingSoon || es.To == ComingSoon,
	}

	switch {
	case es.GridX != nil && es.GridY != nil:
		exit.GridX, exit.GridY = *es.GridX, *es.GridY
	case es.Position != nil:
		// Legacy pixel placement: scale against the authoring canvas onto
		// the 16-cell grid.
		exit.GridX = es.Position.X / s.PixelWidth * GridCells
		exit.GridY = es.Position.Y / s.PixelHeight * GridCells
	default:
		return Exit{}, fmt.Errorf("exit to %q has neither grid nor pixel position", es.To)
	}
	return exit, nil
}

func buildPortal(sceneID string, i int, ps PortalSpec) (Portal, error) {
	p := Portal{
		ID:               ps.ID,
		Kind:             strings.ToLower(strings.TrimSpace(ps.Kind)),
		GridX:            ps.GridX,
		GridY:            ps.GridY,
		TargetURL:        ps.TargetURL,
		InteractionRange: ps.InteractionRange,
		EntryRange:       ps.EntryRange,
		PromptThreshold:  ps.PromptThreshold,
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("%s-portal-%d", sceneID, i)
	}
	if p.Kind != "start" && p.Kind != "exit" {
		return Portal{}, fmt.Errorf("scene: %s portal %s: unknown kind %q", sceneID, p.ID, ps.Kind)
	}
	if p.InteractionRange <= 0 {
		p.InteractionRange = defaultInteractionRange
	}
	if p.EntryRange <= 0 {
		p.EntryRange = defaultEntryRange
	}
	if p.EntryRange > p.InteractionRange {
		return Portal{}, fmt.Errorf("scene: %s portal %s: entry range %.2f exceeds interaction range %.2f",
			sceneID, p.ID, p.EntryRange, p.InteractionRange)
	}
	return p, nil
}

// validTarget reports whether an exit target resolves against the registry:
// a known scene id, an absolute URL, or the coming-soon sentinel.
func validTarget(known map[string]*Scene, to string) bool {
	if to == "" || to == ComingSoon {
		return to == ComingSoon
	}
	if _, ok := known[to]; ok {
		return true
	}
	u, err := url.Parse(to)
	return err == nil && u.Scheme != "" && u.Host != ""
}
