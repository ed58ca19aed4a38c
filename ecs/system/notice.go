package system

import (
	"strings"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
)

const noticeDuration = 4.0

// PushNotice spawns a user-visible HUD message entity.
func PushNotice(w *ecs.World, text string) {
	if w == nil || strings.TrimSpace(text) == "" {
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.NoticeComponent.Kind(), &component.Notice{Text: text})
}

// NoticeSystem expires HUD messages after their display window.
type NoticeSystem struct{}

func NewNoticeSystem() *NoticeSystem { return &NoticeSystem{} }

func (s *NoticeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	clock := w.Clock()
	ecs.ForEach(w, component.NoticeComponent.Kind(), func(e ecs.Entity, n *component.Notice) {
		if n.ExpiresAt == 0 {
			n.ExpiresAt = clock.Now + noticeDuration
			return
		}
		if clock.Now >= n.ExpiresAt {
			ecs.DestroyEntity(w, e)
		}
	})
}
