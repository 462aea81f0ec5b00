package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// HazardSystem kills the hero on contact with a hazard. The move back to the
// start position is left to RespawnSystem.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World, _ float64) {
	hero, ok := findHero(w)
	if !ok || ecs.Has(w, hero.entity, component.RespawnRequestComponent.Kind()) {
		return
	}

	hit := false
	overlapping(w, hero.bounds(), component.KindHazard, func(ecs.Entity, *component.Obstacle) {
		hit = true
	})
	if !hit {
		return
	}

	_ = ecs.Add(w, hero.entity, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
	if sess := session(w); sess != nil {
		sess.Deaths++
	}
	if anim, ok := ecs.Get(w, hero.entity, component.AnimationComponent.Kind()); ok {
		anim.Restart(component.Dead)
	}
	requestSound(w, component.SoundDeath, false)
	w.Events().Push(ecs.Event{Type: ecs.EventHeroDied, Data: hero.entity})
}
