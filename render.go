package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
	"github.com/AIalchemistART/AIalchemistsLAIR/ecs/component"
	"github.com/AIalchemistART/AIalchemistsLAIR/portal"
	"github.com/AIalchemistART/AIalchemistsLAIR/scene"
)

const (
	tileSize      = 40.0
	wallThickness = 14.0
	doorSpan      = 1.4 // door width in grid units

	// minRenderInterval gates redraws of the cached room layer; transition
	// logic runs every tick regardless.
	minRenderInterval = 0.016
)

// Renderer draws the active room. The floor/wall layer is cached to an
// offscreen image and only redrawn when the frame interval elapses or a
// re-render was requested; dynamic layers (doors, props, player, HUD) draw
// every frame on top.
type Renderer struct {
	scenes *scene.Manager
	face   ebtext.Face

	roomImage  *ebiten.Image
	roomScene  string
	lastRender float64
	dirty      bool
}

func NewRenderer(scenes *scene.Manager) *Renderer {
	return &Renderer{
		scenes: scenes,
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		dirty:  true,
	}
}

// Invalidate forces the room layer to redraw on the next frame.
func (r *Renderer) Invalidate() {
	if r != nil {
		r.dirty = true
	}
}

// Reset re-targets the renderer after a scene swap (the camera reset).
func (r *Renderer) Reset(s *scene.Scene) {
	if r == nil || s == nil {
		return
	}
	r.roomScene = s.ID
	r.dirty = true
}

func (r *Renderer) origin(s *scene.Scene) (float64, float64) {
	return (baseWidth - s.Width*tileSize) / 2, (baseHeight - s.Height*tileSize) / 2
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World, debug bool) {
	cur := r.scenes.Current()
	if cur == nil {
		return
	}
	clock := w.Clock()

	if r.roomImage == nil {
		r.roomImage = ebiten.NewImage(baseWidth, baseHeight)
		r.dirty = true
	}
	if r.dirty || r.roomScene != cur.ID || clock.Now-r.lastRender >= minRenderInterval {
		r.drawRoom(cur)
		r.roomScene = cur.ID
		r.lastRender = clock.Now
		r.dirty = false
	}
	screen.DrawImage(r.roomImage, nil)

	ox, oy := r.origin(cur)
	r.drawDoorways(screen, w, cur, ox, oy)
	r.drawProps(screen, w, cur, ox, oy)
	r.drawPortals(screen, w, cur, ox, oy)
	r.drawPlayer(screen, w, ox, oy)
	r.drawHUD(screen, w, cur, debug)
	r.drawDepartureFade(screen, w, clock)
}

// drawRoom renders the cached floor and wall layer. Wall doorway gaps are
// carved here; the door panels themselves animate in drawDoorways.
func (r *Renderer) drawRoom(s *scene.Scene) {
	dst := r.roomImage
	dst.Fill(color.NRGBA{R: 0x12, G: 0x10, B: 0x1a, A: 0xff})
	ox, oy := r.origin(s)
	wpx := float32(s.Width * tileSize)
	hpx := float32(s.Height * tileSize)

	vector.DrawFilledRect(dst, float32(ox), float32(oy), wpx, hpx,
		color.NRGBA{R: 0x24, G: 0x20, B: 0x32, A: 0xff}, false)

	grid := color.NRGBA{R: 0x2e, G: 0x2a, B: 0x40, A: 0xff}
	for x := 0.0; x <= s.Width; x++ {
		vector.StrokeLine(dst, float32(ox+x*tileSize), float32(oy), float32(ox+x*tileSize), float32(oy)+hpx, 1, grid, false)
	}
	for y := 0.0; y <= s.Height; y++ {
		vector.StrokeLine(dst, float32(ox), float32(oy+y*tileSize), float32(ox)+wpx, float32(oy+y*tileSize), 1, grid, false)
	}

	wall := color.NRGBA{R: 0x4a, G: 0x42, B: 0x63, A: 0xff}
	vector.DrawFilledRect(dst, float32(ox), float32(oy-wallThickness), wpx, wallThickness, wall, false)
	vector.DrawFilledRect(dst, float32(ox-wallThickness), float32(oy-wallThickness), wallThickness, hpx+wallThickness, wall, false)
}

func (r *Renderer) drawDoorways(screen *ebiten.Image, w *ecs.World, s *scene.Scene, ox, oy float64) {
	frame := color.NRGBA{R: 0x12, G: 0x10, B: 0x1a, A: 0xff}
	panel := color.NRGBA{R: 0x8a, G: 0x74, B: 0xb8, A: 0xff}
	inert := color.NRGBA{R: 0x55, G: 0x50, B: 0x60, A: 0xff}
	glyph := color.NRGBA{R: 0x31, G: 0xd9, B: 0xc2, A: 0x90}

	ecs.ForEach(w, component.DoorwayComponent.Kind(), func(_ ecs.Entity, d *component.Doorway) {
		if d.SceneID != s.ID {
			return
		}
		if !d.IsWall {
			// Floor doorway: a glyph on the tiles, no open/close state.
			cx := float32(ox + d.GridX*tileSize)
			cy := float32(oy + d.GridY*tileSize)
			vector.DrawFilledCircle(screen, cx, cy, float32(tileSize*0.55), glyph, true)
			return
		}

		span := doorSpan * tileSize
		c := panel
		if d.ComingSoon {
			c = inert
		}
		if d.WallSide == component.WallSideNorth {
			x := ox + d.GridX*tileSize - span/2
			// carve the gap, then draw the panel sliding open with Swing
			vector.DrawFilledRect(screen, float32(x), float32(oy-wallThickness), float32(span), wallThickness, frame, false)
			closedW := span * (1 - d.Swing)
			if closedW > 0 {
				vector.DrawFilledRect(screen, float32(x), float32(oy-wallThickness), float32(closedW), wallThickness, c, false)
			}
		} else {
			y := oy + d.GridY*tileSize - span/2
			vector.DrawFilledRect(screen, float32(ox-wallThickness), float32(y), wallThickness, float32(span), frame, false)
			closedH := span * (1 - d.Swing)
			if closedH > 0 {
				vector.DrawFilledRect(screen, float32(ox-wallThickness), float32(y), wallThickness, float32(closedH), c, false)
			}
		}
	})
}

func (r *Renderer) drawProps(screen *ebiten.Image, w *ecs.World, s *scene.Scene, ox, oy float64) {
	ecs.ForEach(w, component.PlacedObjectComponent.Kind(), func(e ecs.Entity, obj *component.PlacedObject) {
		if obj.SceneID != s.ID {
			return
		}
		cx := ox + obj.GridX*tileSize
		cy := oy + obj.GridY*tileSize

		base := color.NRGBA{R: 0x6b, G: 0x63, B: 0x85, A: 0xff}
		if glow, ok := ecs.Get(w, e, component.GlowComponent.Kind()); ok {
			base = glowColor(glow)
		}
		half := float32(tileSize * 0.45)
		vector.DrawFilledRect(screen, float32(cx)-half, float32(cy)-half, half*2, half*2, base, false)

		if prompt, ok := ecs.Get(w, e, component.InteractPromptComponent.Kind()); ok && prompt.Visible {
			r.drawLabel(screen, prompt.Text, cx, cy-tileSize*0.9)
		}
	})
}

func (r *Renderer) drawPortals(screen *ebiten.Image, w *ecs.World, s *scene.Scene, ox, oy float64) {
	ecs.ForEach(w, component.VibePortalComponent.Kind(), func(e ecs.Entity, p *component.VibePortal) {
		if p.SceneID != s.ID {
			return
		}
		cx := ox + p.GridX*tileSize
		cy := oy + p.GridY*tileSize

		c := color.NRGBA{R: 0x9a, G: 0x5c, B: 0xff, A: 0xff}
		if glow, ok := ecs.Get(w, e, component.GlowComponent.Kind()); ok {
			c = glowColor(glow)
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(tileSize*0.6), c, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(p.EntryRange*tileSize), 1.5,
			color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x50}, true)

		if p.PromptVisible {
			label := "Enter the Vibeverse"
			if p.Kind == portal.KindStart {
				label = "Return through the portal"
			}
			r.drawLabel(screen, label, cx, cy-tileSize)
		}
	})
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, w *ecs.World, ox, oy float64) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cx := float32(ox + pt.GridX*tileSize)
	cy := float32(oy + pt.GridY*tileSize)

	// shadow stays on the floor; the body lifts with the jump arc
	vector.DrawFilledCircle(screen, cx, cy, float32(tileSize*0.3),
		color.NRGBA{A: 0x60}, true)
	body := cy - float32(pt.Z*tileSize*0.6)
	vector.DrawFilledCircle(screen, cx, body, float32(tileSize*0.35),
		color.NRGBA{R: 0xe8, G: 0xd9, B: 0x8a, A: 0xff}, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, w *ecs.World, s *scene.Scene, debug bool) {
	r.drawText(screen, s.DisplayName, 16, 16)

	y := baseHeight - 40.0
	ecs.ForEach(w, component.NoticeComponent.Kind(), func(_ ecs.Entity, n *component.Notice) {
		r.drawLabel(screen, n.Text, baseWidth/2, y)
		y -= 20
	})

	if debug {
		r.drawText(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 16, 32)
	}
}

// drawDepartureFade darkens the screen while a portal departure is pending.
func (r *Renderer) drawDepartureFade(screen *ebiten.Image, w *ecs.World, clock ecs.Clock) {
	var alpha float64
	ecs.ForEach(w, component.VibePortalComponent.Kind(), func(_ ecs.Entity, p *component.VibePortal) {
		if p.NavAt <= 0 {
			return
		}
		remaining := p.NavAt - clock.Now
		if a := 1 - remaining/0.6; a > alpha {
			alpha = a
		}
	})
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	vector.DrawFilledRect(screen, 0, 0, baseWidth, baseHeight,
		color.NRGBA{A: uint8(alpha * 0xff)}, false)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, s, r.face, op)
}

// drawLabel centers text horizontally on x.
func (r *Renderer) drawLabel(screen *ebiten.Image, s string, x, y float64) {
	width, _ := ebtext.Measure(s, r.face, 0)
	r.drawText(screen, s, x-width/2, y)
}

// glowColor applies the current pulse level to a prop's authored color.
func glowColor(g *component.Glow) color.NRGBA {
	c := parseHexColor(g.Color)
	level := g.Level
	if level <= 0 {
		level = g.Min
	}
	if level < 0.2 {
		level = 0.2
	}
	return color.NRGBA{
		R: uint8(float64(c.R) * level),
		G: uint8(float64(c.G) * level),
		B: uint8(float64(c.B) * level),
		A: 0xff,
	}
}

func parseHexColor(s string) color.NRGBA {
	c := color.NRGBA{R: 0x9a, G: 0x5c, B: 0xff, A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return c
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
