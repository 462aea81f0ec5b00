package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// ImageLoader resolves sprite names. A nil loader builds entities without
// images, which is what headless runs and tests use.
type ImageLoader func(path string) (*ebiten.Image, error)

// NewHero creates the player entity at the level's start position.
func NewHero(w *ecs.World, spec *prefabs.HeroSpec, lvl *levels.Level, images ImageLoader) (ecs.Entity, error) {
	if spec == nil || lvl == nil {
		return 0, fmt.Errorf("hero: missing spec or level")
	}

	defs, err := AnimationDefs(spec.Animation)
	if err != nil {
		return 0, fmt.Errorf("hero: %w", err)
	}
	var sheet *ebiten.Image
	if images != nil && spec.Animation.Sheet != "" {
		sheet, err = images(spec.Animation.Sheet)
		if err != nil {
			return 0, fmt.Errorf("hero: sheet: %w", err)
		}
	}

	hero := ecs.CreateEntity(w)
	add := []func() error{
		func() error {
			return ecs.Add(w, hero, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
		},
		func() error {
			return ecs.Add(w, hero, component.TransformComponent.Kind(), &component.Transform{X: lvl.StartX, Y: lvl.StartY})
		},
		func() error {
			return ecs.Add(w, hero, component.BodyComponent.Kind(), &component.Body{Gravity: lvl.Gravity, Speed: float64(lvl.Speed)})
		},
		func() error {
			return ecs.Add(w, hero, component.HitBoxComponent.Kind(), &component.HitBox{W: spec.Collider.Width, H: spec.Collider.Height})
		},
		func() error {
			return ecs.Add(w, hero, component.ContactsComponent.Kind(), &component.Contacts{State: component.Airborne})
		},
		func() error {
			return ecs.Add(w, hero, component.InputComponent.Kind(), &component.Input{})
		},
		func() error {
			return ecs.Add(w, hero, component.PlayerComponent.Kind(), &component.Player{
				JumpImpulse:   spec.JumpImpulse,
				GravityScale:  spec.GravityScale,
				MaxFallSpeed:  spec.MaxFallSpeed,
				StartX:        lvl.StartX,
				StartY:        lvl.StartY,
				InteractReady: true,
			})
		},
		func() error {
			return ecs.Add(w, hero, component.AnimationComponent.Kind(), &component.Animation{
				Sheet:    sheet,
				Defs:     defs,
				Attitude: component.Idle,
				Interval: spec.Animation.Interval,
			})
		},
	}
	for _, fn := range add {
		if err := fn(); err != nil {
			return 0, fmt.Errorf("hero: %w", err)
		}
	}
	return hero, nil
}

// AnimationDefs converts the YAML attitude table. Unknown attitude names are
// an error so typos do not silently drop a sequence.
func AnimationDefs(spec prefabs.AnimationSpec) (map[component.Attitude]component.AnimationDef, error) {
	defs := make(map[component.Attitude]component.AnimationDef, len(spec.Defs))
	for name, d := range spec.Defs {
		att, err := component.ParseAttitude(name)
		if err != nil {
			return nil, err
		}
		defs[att] = component.AnimationDef{Row: d.Row, Frames: d.Frames, FrameW: d.FrameW, FrameH: d.FrameH}
	}
	return defs, nil
}
