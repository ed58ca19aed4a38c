package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/entity"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/system"
	"github.com/AIalchemistART/AIalchemistsLAIR/portal"
	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
	"github.com/AIalchemistART/AIalchemistsLAIR/spatial"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickRate = 1.0 / 60.0
)

// Game owns the ECS world, the system scheduler, and the session services.
// Systems emit request entities; this loop consumes them and performs the IO
// they ask for (scene loads, overlay, navigation).
type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	scenes    *scene.Manager
	session   *portal.Session
	navigator portal.Navigator
	index     *spatial.Index
	watcher   *scene.Watcher
	renderer  *Renderer

	player ecs.Entity

	ui     *ebitenui.UI
	paused bool

	departing bool
	debug     bool
}

func NewGame(startScene string, session *portal.Session, copyFn func(string), debug bool) (*Game, error) {
	registry, err := scene.NewRegistry()
	if err != nil {
		return nil, err
	}
	scenes := scene.NewManager(registry)
	if err := scenes.LoadScene(startScene); err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	index := spatial.NewIndex()
	entity.BuildRegistryEntities(world, registry, index)

	cur := scenes.Current()
	g := &Game{
		world:   world,
		scenes:  scenes,
		session: session,
		index:   index,
		player:  entity.BuildPlayer(world, cur.SpawnX, cur.SpawnY),
		debug:   debug,
	}
	g.renderer = NewRenderer(scenes)
	g.navigator = portal.NavigatorFunc(func(rawURL string) error {
		log.WithField("url", rawURL).Info("leaving the lair")
		return nil
	})
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewMovementSystem(scenes),
		system.NewDoorwaySystem(scenes, index),
		system.NewPortalSystem(scenes, session, copyFn),
		system.NewInteractSystem(scenes),
		system.NewGlowSystem(),
		system.NewNoticeSystem(),
	)

	if debug {
		g.watcher = newSceneWatcher()
	}
	return g, nil
}

// newSceneWatcher watches the on-disk scene data when present. Nil when the
// directories don't exist (installed builds run from the embedded copies).
func newSceneWatcher() *scene.Watcher {
	dirs := make([]string, 0, 2)
	for _, d := range []string{filepath.Join("scene", "scenes"), filepath.Join("scene", "scripts")} {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) == 0 {
		return nil
	}
	w, err := scene.NewWatcher(dirs...)
	if err != nil {
		log.WithError(err).Warn("scene hot reload disabled")
		return nil
	}
	log.Info("scene hot reload enabled")
	return w
}

func (g *Game) Close() {
	if g != nil && g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.departing {
		return ebiten.Termination
	}

	if g.ui != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.ui = nil
			g.paused = false
			return nil
		}
		g.ui.Update()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = true
		g.ui = newPauseUI(g)
		return nil
	}

	g.world.Advance(tickRate)
	g.drainWatcher()
	g.scheduler.Update(g.world)
	g.consumeChord()
	g.consumeRequests()
	return nil
}

// consumeChord handles the Shift+direction shortcut for wall exits. The
// input system cleared the field by next tick, so each press fires once.
func (g *Game) consumeChord() {
	input, ok := ecs.Get(g.world, g.player, component.InputComponent.Kind())
	if !ok || input.TransitionDir == "" {
		return
	}
	dir := input.TransitionDir
	input.TransitionDir = ""

	err := g.scenes.TransitionTo(dir)
	switch {
	case err == nil:
		g.afterSceneLoad()
	case errors.Is(err, scene.ErrComingSoon):
		system.PushNotice(g.world, "That way isn't open yet")
	case errors.Is(err, scene.ErrExternalTarget):
		system.PushNotice(g.world, "Only a portal can take you there")
	case errors.Is(err, scene.ErrNoExit):
		// nothing in that direction; stay quiet
	default:
		log.WithError(err).Warn("manual transition failed")
	}
}

func (g *Game) consumeRequests() {
	ecs.ForEach(g.world, component.SceneChangeRequestComponent.Kind(), func(e ecs.Entity, req *component.SceneChangeRequest) {
		ecs.DestroyEntity(g.world, e)
		if err := g.scenes.LoadScene(req.Target); err != nil {
			log.WithError(err).WithField("via", req.Via).Warn("scene change failed")
			return
		}
		g.afterSceneLoad()
	})

	ecs.ForEach(g.world, component.OverlayRequestComponent.Kind(), func(e ecs.Entity, req *component.OverlayRequest) {
		ecs.DestroyEntity(g.world, e)
		g.ui = newOverlayUI(g, *req)
	})

	ecs.ForEach(g.world, component.RenderRequestComponent.Kind(), func(e ecs.Entity, _ *component.RenderRequest) {
		ecs.DestroyEntity(g.world, e)
		g.renderer.Invalidate()
	})

	ecs.ForEach(g.world, component.PortalNavRequestComponent.Kind(), func(e ecs.Entity, req *component.PortalNavRequest) {
		ecs.DestroyEntity(g.world, e)
		if err := g.navigator.Navigate(req.URL); err != nil {
			log.WithError(err).WithField("portal", req.PortalID).Error("navigation failed")
			system.PushNotice(g.world, "The portal fizzles: nowhere to go")
			return
		}
		// Hard boundary crossing: the process context is handed off.
		g.departing = true
	})
}

// afterSceneLoad repositions the player at the new scene's spawn and resets
// the camera. The scene swap itself already happened in the manager.
func (g *Game) afterSceneLoad() {
	cur := g.scenes.Current()
	if cur == nil {
		return
	}
	if pt, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind()); ok {
		pt.GridX, pt.GridY, pt.Z = cur.SpawnX, cur.SpawnY, 0
	}
	if state, ok := ecs.Get(g.world, g.player, component.PlayerComponent.Kind()); ok {
		state.VZ = 0
		state.Grounded = true
	}
	g.renderer.Reset(cur)
}

// drainWatcher applies scene file edits without blocking the tick.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ev, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadScene(ev)
		case err := <-g.watcher.Errors:
			if err != nil {
				log.WithError(err).Warn("scene watcher error")
			}
		default:
			return
		}
	}
}

func (g *Game) reloadScene(ev scene.Event) {
	if ev.Kind == scene.EventScript {
		log.WithField("script", ev.Path).Debug("hook script changed")
	}
	if _, err := g.scenes.Registry().Reload(ev.Name); err != nil {
		log.WithError(err).WithField("scene", ev.Name).Warn("scene reload failed")
		return
	}
	log.WithField("scene", ev.Name).Info("scene reloaded")
	system.RequestRender(g.world)
	system.PushNotice(g.world, fmt.Sprintf("Reloaded scene %s", ev.Name))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.debug)
	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
