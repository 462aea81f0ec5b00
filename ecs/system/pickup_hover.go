package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	coinBobAmplitude = 4
	// radians per second
	coinBobSpeed = 4.8
)

// PickupHoverSystem bobs coin sprites up and down. Only the drawn offset
// moves; the collision bounds stay put.
type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CoinComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, coin *component.Coin, sprite *component.Sprite) {
		if !coin.Initialized {
			coin.BaseOffsetY = sprite.OffsetY
			coin.Initialized = true
		}

		coin.Phase += coinBobSpeed * dt
		sprite.OffsetY = coin.BaseOffsetY + math.Sin(coin.Phase)*coinBobAmplitude
	})
}
