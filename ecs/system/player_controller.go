package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerControllerSystem turns input into velocity and attitude. It runs
// before the collision resolver so the resolver sees this frame's intent.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	hero, ok := findHero(w)
	if !ok {
		return
	}
	player, ok := ecs.Get(w, hero.entity, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, hero.entity, component.InputComponent.Kind())
	if !ok {
		input = &component.Input{}
	}
	anim, _ := ecs.Get(w, hero.entity, component.AnimationComponent.Kind())

	body := hero.body
	contacts := hero.contacts

	contacts.Touched = 0

	if !input.Interact {
		player.InteractReady = true
	}

	dir := direction(input)
	body.VX = float64(dir) * body.Speed
	if anim != nil && anim.Attitude != component.Dead {
		anim.SetAttitude(attitudeFor(contacts.State, body.VY, dir))
	}

	if input.Jump && contacts.State == component.Grounded {
		contacts.State = component.Airborne
		impulse := player.JumpImpulse
		if impulse == 0 {
			impulse = component.DefaultJumpImpulse
		}
		body.VY = impulse
		if anim != nil && anim.Attitude != component.Dead {
			anim.SetAttitude(component.Jump)
		}
		requestSound(w, component.SoundJump, false)
	}

	if contacts.State == component.Airborne {
		limit := player.FallCap(body)
		if body.VY >= limit {
			body.VY = limit
		} else {
			scale := player.GravityScale
			if scale == 0 {
				scale = component.DefaultGravityScale
			}
			body.VY += scale * body.Gravity * dt
		}
	}
}

// direction is -1, 0 or 1. Holding both directions cancels out.
func direction(in *component.Input) int {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	}
	return 0
}

func attitudeFor(state component.MovementState, vy float64, dir int) component.Attitude {
	if state == component.Grounded {
		switch dir {
		case -1:
			return component.RunLeft
		case 1:
			return component.RunRight
		}
		return component.Idle
	}

	if vy > 0 {
		switch dir {
		case -1:
			return component.FallLeft
		case 1:
			return component.FallRight
		}
		return component.Fall
	}

	switch dir {
	case -1:
		return component.JumpLeft
	case 1:
		return component.JumpRight
	}
	return component.Jump
}
