package system

import "github.com/milk9111/platformer/ecs"

// NewPipeline returns the per-frame systems in frame order: input, intent,
// contacts, interactions, integration, then presentation. render may be nil
// for headless runs.
func NewPipeline(input *InputSystem, sink AudioSink, render *RenderSystem) *ecs.Scheduler {
	s := ecs.NewScheduler(
		input,
		NewPlayerControllerSystem(),
		NewCollisionSystem(),
		NewPickupCollectSystem(),
		NewHazardSystem(),
		NewInteractSystem(),
		NewMovementSystem(),
		NewRespawnSystem(),
		NewAnimationSystem(),
		NewPickupHoverSystem(),
		NewCameraSystem(),
		NewAudioSystem(sink),
	)
	if render != nil {
		s.Add(render)
	}
	return s
}
