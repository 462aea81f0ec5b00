package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AttachSession shares sess with the world. The pointer is stored as is, so
// progress made in this world is visible to the caller and later worlds.
func AttachSession(w *ecs.World, sess *component.Session) (ecs.Entity, error) {
	if sess == nil {
		sess = &component.Session{}
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent.Kind(), sess); err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}
	return e, nil
}
