package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// InteractSystem handles NPCs and doors while the interact key is held.
// Both consume Player.InteractReady so holding the key fires once.
type InteractSystem struct{}

func NewInteractSystem() *InteractSystem { return &InteractSystem{} }

func (s *InteractSystem) Update(w *ecs.World, _ float64) {
	hero, ok := findHero(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, hero.entity, component.InputComponent.Kind())
	if !ok || !input.Interact {
		return
	}
	player, ok := ecs.Get(w, hero.entity, component.PlayerComponent.Kind())
	if !ok {
		return
	}

	box := hero.bounds()

	overlapping(w, box, component.KindNPC, func(e ecs.Entity, _ *component.Obstacle) {
		npc, ok := ecs.Get(w, e, component.NPCComponent.Kind())
		if !ok || npc.Open {
			return
		}
		npc.Open = true
		player.InteractReady = false
		w.Events().Push(ecs.Event{Type: ecs.EventDialogueOpen, Data: e})
	})

	if hero.contacts.State != component.Grounded {
		return
	}
	overlapping(w, box, component.KindDoor, func(e ecs.Entity, _ *component.Obstacle) {
		if !player.InteractReady {
			return
		}
		door, ok := ecs.Get(w, e, component.DoorComponent.Kind())
		if !ok {
			return
		}
		req := door.Request()
		ent := ecs.CreateEntity(w)
		_ = ecs.Add(w, ent, component.LevelChangeRequestComponent.Kind(), &req)
		player.InteractReady = false
	})
}
