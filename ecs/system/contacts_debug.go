package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
)

const debugDotSize = 4

var (
	debugHeroColor    = cp.FColor{R: 1, G: 0, B: 1, A: 0.9}
	debugTouchedColor = cp.FColor{R: 1, G: 0.2, B: 0.2, A: 1}
)

// DrawContactsDebug outlines obstacles and the hero hit box, and marks the
// sides the resolver tagged this frame. heroColor may be nil.
func DrawContactsDebug(w *ecs.World, screen *ebiten.Image, heroColor color.Color) {
	if w == nil || screen == nil {
		return
	}
	cam, ok := activeCamera(w)
	if !ok {
		return
	}
	d := &contactsDebugDrawer{screen: screen, camX: cam.OffsetX, camY: cam.OffsetY}

	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		d.drawBox(o.Bounds, obstacleDebugColor(o))
	})

	hero, ok := findHero(w)
	if !ok {
		return
	}
	c := debugHeroColor
	if heroColor != nil {
		c = toFColor(heroColor)
	}
	box := hero.bounds()
	d.drawBox(box, c)
	d.drawDot(box.Center(), c)

	tl := cp.Vector{X: box.X, Y: box.Y}
	tr := cp.Vector{X: box.X + box.W, Y: box.Y}
	bl := cp.Vector{X: box.X, Y: box.Y + box.H}
	br := cp.Vector{X: box.X + box.W, Y: box.Y + box.H}
	touched := hero.contacts.Touched
	if touched.Has(component.SideUp) {
		d.drawLine(tl, tr, debugTouchedColor)
	}
	if touched.Has(component.SideDown) {
		d.drawLine(bl, br, debugTouchedColor)
	}
	if touched.Has(component.SideLeft) {
		d.drawLine(tl, bl, debugTouchedColor)
	}
	if touched.Has(component.SideRight) {
		d.drawLine(tr, br, debugTouchedColor)
	}
}

func DrawHeroDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	hero, ok := findHero(w)
	if !ok {
		return
	}
	attitude := "none"
	if anim, ok := ecs.Get(w, hero.entity, component.AnimationComponent.Kind()); ok {
		attitude = anim.Attitude.String()
	}
	text := fmt.Sprintf("State: %s\nTouched: %s\nAttitude: %s\nPos: %.1f, %.1f\nVel: %.1f, %.1f",
		hero.contacts.State, hero.contacts.Touched, attitude,
		hero.transform.X, hero.transform.Y, hero.body.VX, hero.body.VY)
	ebitenutil.DebugPrintAt(screen, text, 10, 90)
}

func obstacleDebugColor(o *component.Obstacle) cp.FColor {
	a := float32(0.9)
	if !o.Collidable {
		a = 0.3
	}
	switch o.Kind {
	case component.KindPlatform:
		return cp.FColor{R: 0.2, G: 1, B: 0.2, A: a}
	case component.KindHazard:
		return cp.FColor{R: 1, G: 0.5, B: 0.1, A: a}
	case component.KindCoin:
		return cp.FColor{R: 1, G: 0.9, B: 0.1, A: a}
	default:
		return cp.FColor{R: 0.3, G: 0.6, B: 1, A: a}
	}
}

type contactsDebugDrawer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
}

func (d *contactsDebugDrawer) drawBox(b geom.AABB, c cp.FColor) {
	x, y := d.toScreen(b.TopLeft())
	vector.StrokeRect(d.screen, float32(x), float32(y), float32(b.W), float32(b.H), 1, toNRGBA(c), false)
}

func (d *contactsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 3, toNRGBA(c), false)
}

func (d *contactsDebugDrawer) drawDot(pos cp.Vector, c cp.FColor) {
	half := debugDotSize / 2.0
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, c)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, c)
}

func (d *contactsDebugDrawer) toScreen(v cp.Vector) (float64, float64) {
	return v.X - d.camX, v.Y - d.camY
}

func toFColor(c color.Color) cp.FColor {
	r, g, b, a := c.RGBA()
	return cp.FColor{R: float32(r) / 0xffff, G: float32(g) / 0xffff, B: float32(b) / 0xffff, A: float32(a) / 0xffff}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
