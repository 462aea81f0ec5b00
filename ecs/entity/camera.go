package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// NewCamera creates a viewport centred on target.
func NewCamera(w *ecs.World, target ecs.Entity, viewW, viewH float64) (ecs.Entity, error) {
	cam := &component.Camera{ViewW: viewW, ViewH: viewH, Target: uint64(target)}

	t, okT := ecs.Get(w, target, component.TransformComponent.Kind())
	box, okB := ecs.Get(w, target, component.HitBoxComponent.Kind())
	if okT && okB {
		cam.Recenter(box.Bounds(*t))
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), cam); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
