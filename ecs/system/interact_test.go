package system

import (
	"testing"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
)

func spawnProp(t *testing.T, w *ecs.World, obj component.PlacedObject, prompt string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlacedObjectComponent.Kind(), &obj); err != nil {
		t.Fatalf("add object: %v", err)
	}
	if err := ecs.Add(w, e, component.InteractPromptComponent.Kind(), &component.InteractPrompt{Text: prompt}); err != nil {
		t.Fatalf("add prompt: %v", err)
	}
	return e
}

func drainOverlayRequests(w *ecs.World) []component.OverlayRequest {
	var out []component.OverlayRequest
	ecs.ForEach(w, component.OverlayRequestComponent.Kind(), func(e ecs.Entity, r *component.OverlayRequest) {
		out = append(out, *r)
		ecs.DestroyEntity(w, e)
	})
	return out
}

func TestInteractPromptVisibility(t *testing.T) {
	m := newLairManager(t)
	w := ecs.NewWorld()
	player := spawnTestPlayer(t, w, 5, 5)
	e := spawnProp(t, w, component.PlacedObject{SceneID: "lair", Name: "tv", Kind: "tv", GridX: 6, GridY: 5}, "Press E")
	sys := NewInteractSystem(m)

	tick(w, sys, 0.1)
	prompt, _ := ecs.Get(w, e, component.InteractPromptComponent.Kind())
	if !prompt.Visible {
		t.Fatal("prompt should show within the default radius")
	}

	movePlayer(t, w, player, 10, 10)
	tick(w, sys, 0.1)
	if prompt.Visible {
		t.Fatal("prompt should hide out of range")
	}
}

func TestInteractOpensMediaOverlay(t *testing.T) {
	m := newLairManager(t)
	w := ecs.NewWorld()
	player := spawnTestPlayer(t, w, 5, 5)
	e := spawnProp(t, w, component.PlacedObject{SceneID: "lair", Name: "tv", Kind: "tv", GridX: 6, GridY: 5}, "Press E")
	if err := ecs.Add(w, e, component.MediaLinkComponent.Kind(), &component.MediaLink{
		Title: "Alchemist TV", URL: "https://www.youtube.com/@AIalchemistART", Kind: "video",
	}); err != nil {
		t.Fatalf("add media: %v", err)
	}
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	input.InteractPressed = true
	sys := NewInteractSystem(m)

	tick(w, sys, 0.1)
	got := drainOverlayRequests(w)
	if len(got) != 1 {
		t.Fatalf("expected 1 overlay request, got %d", len(got))
	}
	if got[0].Title != "Alchemist TV" || got[0].Kind != "video" {
		t.Fatalf("unexpected overlay request %+v", got[0])
	}
}

func TestInteractTrophyNotice(t *testing.T) {
	m := newLairManager(t)
	w := ecs.NewWorld()
	player := spawnTestPlayer(t, w, 5, 5)
	e := spawnProp(t, w, component.PlacedObject{SceneID: "lair", Name: "trophy", Kind: "trophy", GridX: 5.5, GridY: 5}, "Press E")
	if err := ecs.Add(w, e, component.TrophyComponent.Kind(), &component.Trophy{}); err != nil {
		t.Fatalf("add trophy: %v", err)
	}
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	input.InteractPressed = true
	sys := NewInteractSystem(m)

	tick(w, sys, 0.1)
	texts := noticeTexts(w)
	if len(texts) != 1 {
		t.Fatalf("expected 1 notice, got %v", texts)
	}

	// Props in other scenes never react.
	obj, _ := ecs.Get(w, e, component.PlacedObjectComponent.Kind())
	obj.SceneID = "studio"
	tick(w, sys, 0.1)
	if got := noticeTexts(w); len(got) != 1 {
		t.Fatalf("expected no new notice for another scene's prop, got %v", got)
	}
}

func TestNoticeExpiry(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewNoticeSystem()

	PushNotice(w, "hello")
	PushNotice(w, "  ") // blank notices are dropped
	if got := noticeTexts(w); len(got) != 1 {
		t.Fatalf("expected 1 notice, got %v", got)
	}

	tick(w, sys, 0.1) // stamps the deadline
	for i := 0; i < 35; i++ {
		tick(w, sys, 0.1)
	}
	if got := noticeTexts(w); len(got) != 1 {
		t.Fatalf("notice should survive its display window, got %v", got)
	}
	for i := 0; i < 10; i++ {
		tick(w, sys, 0.1)
	}
	if got := noticeTexts(w); len(got) != 0 {
		t.Fatalf("notice should expire, got %v", got)
	}
}
