package system

import (
	"testing"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
)

func TestGlowPulse(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GlowComponent.Kind(), &component.Glow{Color: "#31d9c2"}); err != nil {
		t.Fatalf("add glow: %v", err)
	}
	sys := NewGlowSystem()

	tick(w, sys, 0.1)
	glow, _ := ecs.Get(w, e, component.GlowComponent.Kind())
	if glow.Min == 0 || glow.Max == 0 || glow.Period == 0 {
		t.Fatalf("defaults should be applied, got %+v", glow)
	}
	if glow.Tween == nil {
		t.Fatal("tween should be created on first update")
	}

	// Run several full periods: the level must stay inside [min, max].
	for i := 0; i < 60; i++ {
		tick(w, sys, 0.1)
		if glow.Level < glow.Min-1e-6 || glow.Level > glow.Max+1e-6 {
			t.Fatalf("level %v escaped [%v, %v]", glow.Level, glow.Min, glow.Max)
		}
	}
}
