package component

import "github.com/milk9111/platformer/geom"

// Body carries the kinematic state integrated by MovementSystem.
type Body struct {
	VX float64
	VY float64
	// Gravity is the vertical acceleration of the current level.
	Gravity float64
	// Speed is the level's reference speed: horizontal run speed and the
	// default fall-speed cap.
	Speed float64
}

var BodyComponent = NewComponent[Body]()

// HitBox is a fixed-size box anchored at the entity's Transform.
type HitBox struct {
	W float64
	H float64
}

var HitBoxComponent = NewComponent[HitBox]()

// Bounds derives the world-space box from the entity position.
func (h HitBox) Bounds(t Transform) geom.AABB {
	return geom.New(t.X, t.Y, h.W, h.H)
}
