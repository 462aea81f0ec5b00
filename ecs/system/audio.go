package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AudioSink plays sounds by id. Implementations return an error wrapping
// assets.ErrAssetNotFound for unknown ids.
type AudioSink interface {
	PlayOnce(id string) error
	PlayLooping(id string) error
}

// AudioSystem drains SoundRequests into the sink. A failed sound is logged
// and does not stop the frame.
type AudioSystem struct {
	sink AudioSink
}

func NewAudioSystem(sink AudioSink) *AudioSystem {
	return &AudioSystem{sink: sink}
}

func (a *AudioSystem) Update(w *ecs.World, _ float64) {
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(e ecs.Entity, req *component.SoundRequest) {
		if a.sink != nil {
			play := a.sink.PlayOnce
			if req.Loop {
				play = a.sink.PlayLooping
			}
			if err := play(req.ID); err != nil {
				log.Printf("audio: play %q: %v", req.ID, err)
			}
		}
		ecs.DestroyEntity(w, e)
	})
}
