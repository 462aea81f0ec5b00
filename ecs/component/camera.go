package component

import "github.com/milk9111/platformer/geom"

type Camera struct {
	ViewW   float64
	ViewH   float64
	OffsetX float64
	OffsetY float64
	// Target is the followed entity (ecs.Entity is uint64).
	Target uint64
}

var CameraComponent = NewComponent[Camera]()

// Follow moves the viewport with the target's velocity.
func (c *Camera) Follow(vx, vy, dt float64) {
	c.OffsetX += vx * dt
	c.OffsetY += vy * dt
}

// Recenter places box at the middle of the viewport.
func (c *Camera) Recenter(box geom.AABB) {
	center := box.Center()
	c.OffsetX = center.X - c.ViewW/2
	c.OffsetY = center.Y - c.ViewH/2
}

func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	return x - c.OffsetX, y - c.OffsetY
}

// View is the world-space rectangle currently on screen.
func (c *Camera) View() geom.AABB {
	return geom.New(c.OffsetX, c.OffsetY, c.ViewW, c.ViewH)
}
