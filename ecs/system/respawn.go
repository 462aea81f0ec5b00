package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// RespawnSystem moves a hero carrying a RespawnRequest back to its start
// position. It runs after MovementSystem so the frame's integration does not
// undo the teleport.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *ecs.World, _ float64) {
	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		_ = ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
		if !ok {
			return
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = player.StartX
			t.Y = player.StartY
		}
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			body.VX = 0
			body.VY = 0
		}
		if contacts, ok := ecs.Get(w, e, component.ContactsComponent.Kind()); ok {
			contacts.State = component.Airborne
			contacts.Touched = 0
		}
		_ = ecs.Add(w, e, component.RecenterRequestComponent.Kind(), &component.RecenterRequest{})
	})
}
