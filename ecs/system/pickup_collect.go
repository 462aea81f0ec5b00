package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PickupCollectSystem consumes coins the hero touches. A coin pays out once:
// it stops colliding and disappears, but its entity stays so a cached room
// remembers it was taken.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World, _ float64) {
	hero, ok := findHero(w)
	if !ok {
		return
	}
	sess := session(w)

	overlapping(w, hero.bounds(), component.KindCoin, func(e ecs.Entity, o *component.Obstacle) {
		o.Collidable = false
		o.Visible = false

		value := 1
		if coin, ok := ecs.Get(w, e, component.CoinComponent.Kind()); ok {
			value = coin.Value
		}
		if sess != nil {
			sess.Score += value
			w.Events().Push(ecs.Event{Type: ecs.EventCoinCollected, Data: sess.Score})
		}
		requestSound(w, component.SoundCoin, false)
	})
}
