package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem moves the viewport with its target's velocity, or snaps onto
// the target when it carries a RecenterRequest.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		target := ecs.Entity(cam.Target)
		if !w.IsAlive(target) {
			return
		}

		if ecs.Has(w, target, component.RecenterRequestComponent.Kind()) {
			_ = ecs.Remove(w, target, component.RecenterRequestComponent.Kind())
			t, okT := ecs.Get(w, target, component.TransformComponent.Kind())
			box, okB := ecs.Get(w, target, component.HitBoxComponent.Kind())
			if okT && okB {
				cam.Recenter(box.Bounds(*t))
			}
			return
		}

		if body, ok := ecs.Get(w, target, component.BodyComponent.Kind()); ok {
			cam.Follow(body.VX, body.VY, dt)
		}
	})
}
