package geom

import "github.com/jakecoffman/cp"

// AABB is an axis-aligned box in world units with a top-left origin
// (Y grows downward).
type AABB struct {
	X, Y float64
	W, H float64
}

func New(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the box has no area.
func (a AABB) Empty() bool {
	return a.W <= 0 || a.H <= 0
}

// Intersects reports a strict overlap on both axes. Boxes that only share an
// edge do not intersect, and empty boxes never intersect anything.
func (a AABB) Intersects(b AABB) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Intersects is the free-function form of AABB.Intersects.
func Intersects(a, b AABB) bool {
	return a.Intersects(b)
}

func (a AABB) TopLeft() cp.Vector {
	return cp.Vector{X: a.X, Y: a.Y}
}

func (a AABB) Center() cp.Vector {
	return cp.Vector{X: a.X + a.W/2, Y: a.Y + a.H/2}
}

func (a AABB) Translate(v cp.Vector) AABB {
	a.X += v.X
	a.Y += v.Y
	return a
}

// BB converts to a chipmunk bounding box. The Y axis is kept as-is, so B holds
// the smaller (top) coordinate.
func (a AABB) BB() cp.BB {
	return cp.BB{L: a.X, B: a.Y, R: a.X + a.W, T: a.Y + a.H}
}
