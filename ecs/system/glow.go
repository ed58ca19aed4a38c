package system

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
)

const (
	defaultGlowMin    = 0.35
	defaultGlowMax    = 1.0
	defaultGlowPeriod = 1.2
)

// GlowSystem drives the prop glow pulse: a tween eases the level between the
// glow's min and max, flipping direction at each end.
type GlowSystem struct{}

func NewGlowSystem() *GlowSystem { return &GlowSystem{} }

func (g *GlowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := float32(w.Clock().DT)

	ecs.ForEach(w, component.GlowComponent.Kind(), func(_ ecs.Entity, glow *component.Glow) {
		if glow.Max <= 0 {
			glow.Min, glow.Max = defaultGlowMin, defaultGlowMax
		}
		if glow.Period <= 0 {
			glow.Period = defaultGlowPeriod
		}
		if glow.Tween == nil {
			glow.Rising = true
			glow.Tween = gween.New(float32(glow.Min), float32(glow.Max), float32(glow.Period), ease.InOutQuad)
		}

		level, done := glow.Tween.Update(dt)
		glow.Level = float64(level)
		if done {
			from, to := glow.Max, glow.Min
			if !glow.Rising {
				from, to = glow.Min, glow.Max
			}
			glow.Rising = !glow.Rising
			glow.Tween = gween.New(float32(from), float32(to), float32(glow.Period), ease.InOutQuad)
		}
	})
}
