package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// MovementSystem reacts to the sides tagged by the collision resolver and
// then integrates position.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach3(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), component.ContactsComponent.Kind(), func(_ ecs.Entity, t *component.Transform, body *component.Body, contacts *component.Contacts) {
		ApplyContacts(body, contacts)
		t.X += body.VX * dt
		t.Y += body.VY * dt
	})
}

// ApplyContacts is the velocity reaction to this frame's touched sides.
func ApplyContacts(body *component.Body, contacts *component.Contacts) {
	touched := contacts.Touched
	if touched == 0 {
		contacts.State = component.Airborne
		return
	}
	if touched.Has(component.SideUp) {
		body.VY = 0
	}
	if touched.Has(component.SideDown) {
		contacts.State = component.Grounded
		body.VY = 0
	}
	if touched.Has(component.SideLeft) || touched.Has(component.SideRight) {
		body.VX = 0
	}
}
