package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// Scene is a world built for one level or room.
type Scene struct {
	World  *ecs.World
	Hero   ecs.Entity
	Camera ecs.Entity
	Level  *levels.Level
}

// BuildScene assembles a world: level tiles, session, hero and camera.
func BuildScene(lvl *levels.Level, hero *prefabs.HeroSpec, sess *component.Session, images ImageLoader) (*Scene, error) {
	w := ecs.NewWorld()

	if err := LoadLevelToWorld(w, lvl, images); err != nil {
		return nil, err
	}
	if _, err := AttachSession(w, sess); err != nil {
		return nil, err
	}
	h, err := NewHero(w, hero, lvl, images)
	if err != nil {
		return nil, err
	}
	cam, err := NewCamera(w, h, common.BaseWidth, common.BaseHeight)
	if err != nil {
		return nil, err
	}

	if lvl.Music != "" {
		req := ecs.CreateEntity(w)
		if err := ecs.Add(w, req, component.SoundRequestComponent.Kind(), &component.SoundRequest{ID: lvl.Music, Loop: true}); err != nil {
			return nil, fmt.Errorf("scene: music: %w", err)
		}
	}

	return &Scene{World: w, Hero: h, Camera: cam, Level: lvl}, nil
}

func scaled(img *ebiten.Image, w, h float64) *ebiten.Image {
	if img == nil || w <= 0 || h <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() == int(w) && b.Dy() == int(h) {
		return img
	}
	out := ebiten.NewImage(int(w), int(h))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	out.DrawImage(img, op)
	return out
}
