package entity

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"golang.org/x/image/colornames"
)

var kindFill = map[levels.Kind]color.Color{
	levels.KindPlatform: colornames.Saddlebrown,
	levels.KindCoin:     colornames.Gold,
	levels.KindDoor:     colornames.Sienna,
	levels.KindSpike:    colornames.Silver,
	levels.KindNPC:      colornames.Royalblue,
}

// LoadLevelToWorld creates the scene entity, the background and one entity
// per expanded tile.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, images ImageLoader) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}

	info := ecs.CreateEntity(w)
	if err := ecs.Add(w, info, component.LevelInfoComponent.Kind(), &component.LevelInfo{
		Level:      lvl.ID,
		Room:       lvl.Room,
		Blink:      lvl.Blink,
		Rotation:   lvl.Rotation,
		Background: lvl.Background.Image,
		Music:      lvl.Music,
	}); err != nil {
		return fmt.Errorf("level: add info: %w", err)
	}

	if err := addBackground(w, lvl.Background, images); err != nil {
		return err
	}

	cache := make(map[string]*ebiten.Image)
	for i, o := range lvl.Obstacles {
		if err := addObstacle(w, o, images, cache); err != nil {
			return fmt.Errorf("level %s: obstacle %d: %w", lvl.ID, i, err)
		}
	}
	return nil
}

func addBackground(w *ecs.World, bg levels.Background, images ImageLoader) error {
	if bg.Image == "" || images == nil {
		return nil
	}
	img, err := images(bg.Image)
	if err != nil {
		return fmt.Errorf("level: background: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: bg.X, Y: bg.Y}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: bg.Image, Image: scaled(img, bg.W, bg.H)})
}

func addObstacle(w *ecs.World, o levels.Obstacle, images ImageLoader, cache map[string]*ebiten.Image) error {
	e := ecs.CreateEntity(w)

	kind, err := obstacleKind(o.Kind)
	if err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{
		Kind:       kind,
		Bounds:     o.Bounds,
		Collidable: o.Collision,
		Visible:    true,
	}); err != nil {
		return err
	}

	switch kind {
	case component.KindCoin:
		err = ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{Value: o.Value})
	case component.KindDoor:
		err = ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{Destination: o.Destination})
	case component.KindHazard:
		err = ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{})
	case component.KindNPC:
		err = ecs.Add(w, e, component.NPCComponent.Kind(), &component.NPC{Script: o.Script})
	}
	if err != nil {
		return err
	}

	sprite := &component.Sprite{
		Name:    o.Sprite,
		Fill:    kindFill[o.Kind],
		OffsetX: o.Tile.X - o.Bounds.X,
		OffsetY: o.Tile.Y - o.Bounds.Y,
		W:       o.Tile.W,
		H:       o.Tile.H,
	}
	if images != nil && o.Sprite != "" {
		img, ok := cache[o.Sprite]
		if !ok {
			img, err = images(o.Sprite)
			if err != nil {
				return err
			}
			cache[o.Sprite] = img
		}
		sprite.Image = img
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)
}

func obstacleKind(k levels.Kind) (component.ObstacleKind, error) {
	switch k {
	case levels.KindPlatform:
		return component.KindPlatform, nil
	case levels.KindCoin:
		return component.KindCoin, nil
	case levels.KindDoor:
		return component.KindDoor, nil
	case levels.KindSpike:
		return component.KindHazard, nil
	case levels.KindNPC:
		return component.KindNPC, nil
	}
	return 0, fmt.Errorf("%w: obstacle kind %q", levels.ErrInvalidLevel, k)
}
