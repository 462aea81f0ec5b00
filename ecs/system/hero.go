package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
)

// heroParts groups the hero components most systems need.
type heroParts struct {
	entity    ecs.Entity
	transform *component.Transform
	body      *component.Body
	box       *component.HitBox
	contacts  *component.Contacts
}

func findHero(w *ecs.World) (heroParts, bool) {
	if w == nil {
		return heroParts{}, false
	}
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return heroParts{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return heroParts{}, false
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return heroParts{}, false
	}
	box, ok := ecs.Get(w, e, component.HitBoxComponent.Kind())
	if !ok {
		return heroParts{}, false
	}
	contacts, ok := ecs.Get(w, e, component.ContactsComponent.Kind())
	if !ok {
		return heroParts{}, false
	}
	return heroParts{entity: e, transform: t, body: body, box: box, contacts: contacts}, true
}

func (h heroParts) bounds() geom.AABB {
	return h.box.Bounds(*h.transform)
}

// overlapping calls fn for every obstacle of kind whose bounds intersect box.
func overlapping(w *ecs.World, box geom.AABB, kind component.ObstacleKind, fn func(ecs.Entity, *component.Obstacle)) {
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(e ecs.Entity, o *component.Obstacle) {
		if o.Kind != kind || !o.Collidable || !box.Intersects(o.Bounds) {
			return
		}
		fn(e, o)
	})
}

func requestSound(w *ecs.World, id string, loop bool) {
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.SoundRequestComponent.Kind(), &component.SoundRequest{ID: id, Loop: loop})
}

func session(w *ecs.World) *component.Session {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return s
}
