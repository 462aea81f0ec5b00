package system

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// RenderSystem projects world positions to the screen in Update and draws
// the scene in Draw.
type RenderSystem struct {
	now func() time.Time
}

func NewRenderSystem(now func() time.Time) *RenderSystem {
	if now == nil {
		now = time.Now
	}
	return &RenderSystem{now: now}
}

func (r *RenderSystem) Update(w *ecs.World, _ float64) {
	cam, ok := activeCamera(w)
	if !ok {
		return
	}

	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, t *component.Transform) {
		x, y := cam.ToScreen(t.X, t.Y)
		setScreenPosition(w, e, x, y)
	})
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(e ecs.Entity, o *component.Obstacle) {
		x, y := cam.ToScreen(o.Bounds.X, o.Bounds.Y)
		setScreenPosition(w, e, x, y)
	})
}

func setScreenPosition(w *ecs.World, e ecs.Entity, x, y float64) {
	if pos, ok := ecs.Get(w, e, component.ScreenPositionComponent.Kind()); ok {
		pos.X, pos.Y = x, y
		return
	}
	_ = ecs.Add(w, e, component.ScreenPositionComponent.Kind(), &component.ScreenPosition{X: x, Y: y})
}

func activeCamera(w *ecs.World) (*component.Camera, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.CameraComponent.Kind())
}

// PlatformsVisible implements the blink effect: blinking platforms are shown
// for the first quarter of every second.
func PlatformsVisible(blink bool, ms int64) bool {
	return !blink || ms%1000 <= 250
}

// Draw renders background, obstacles and the hero using the screen
// positions computed by the last Update.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	cam, ok := activeCamera(w)
	if !ok {
		return
	}

	var info component.LevelInfo
	if e, ok := ecs.First(w, component.LevelInfoComponent.Kind()); ok {
		if li, ok := ecs.Get(w, e, component.LevelInfoComponent.Kind()); ok {
			info = *li
		}
	}
	rot := &rotation{
		radians: info.Rotation * math.Pi / 180,
		cx:      cam.ViewW / 2,
		cy:      cam.ViewH / 2,
	}

	ecs.ForEach2(w, component.BackgroundTagComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.BackgroundTag, s *component.Sprite) {
		if s.Image == nil {
			return
		}
		pos, ok := ecs.Get(w, e, component.ScreenPositionComponent.Kind())
		if !ok {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		rot.apply(&op.GeoM)
		screen.DrawImage(s.Image, op)
	})

	showPlatforms := PlatformsVisible(info.Blink, r.now().UnixMilli())
	view := cam.View().BB()
	ecs.ForEach2(w, component.ObstacleComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, o *component.Obstacle, s *component.Sprite) {
		if !o.Visible || (o.Kind == component.KindPlatform && !showPlatforms) {
			return
		}
		if info.Rotation == 0 && !o.Bounds.BB().Intersects(view) {
			return
		}
		pos, ok := ecs.Get(w, e, component.ScreenPositionComponent.Kind())
		if !ok {
			return
		}
		dw, dh := o.Bounds.W, o.Bounds.H
		if s.W > 0 && s.H > 0 {
			dw, dh = s.W, s.H
		}
		drawSprite(screen, s, pos.X+s.OffsetX, pos.Y+s.OffsetY, dw, dh, rot)
	})

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.ScreenPositionComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, pos *component.ScreenPosition) {
		if anim.Sheet == nil {
			return
		}
		rect := anim.FrameRect()
		if rect.Empty() {
			return
		}
		frame := anim.Sheet.SubImage(rect).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		if anim.Mirror {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(rect.Dx()), 0)
		}
		op.GeoM.Translate(pos.X, pos.Y)
		rot.apply(&op.GeoM)
		screen.DrawImage(frame, op)
	})
}

type rotation struct {
	radians float64
	cx, cy  float64
}

func (r *rotation) apply(m *ebiten.GeoM) {
	if r == nil || r.radians == 0 {
		return
	}
	m.Translate(-r.cx, -r.cy)
	m.Rotate(r.radians)
	m.Translate(r.cx, r.cy)
}

func drawSprite(screen *ebiten.Image, s *component.Sprite, x, y, w, h float64, rot *rotation) {
	if s.Image == nil {
		if s.Fill == nil {
			return
		}
		if rot.radians == 0 {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), s.Fill, false)
			return
		}
		s.Image = ebiten.NewImage(int(w), int(h))
		s.Image.Fill(s.Fill)
	}

	op := &ebiten.DrawImageOptions{}
	b := s.Image.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 && (b.Dx() != int(w) || b.Dy() != int(h)) {
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	}
	op.GeoM.Translate(x, y)
	rot.apply(&op.GeoM)
	screen.DrawImage(s.Image, op)
}
