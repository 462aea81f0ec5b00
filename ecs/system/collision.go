package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
)

const (
	// contactOffset is how deep, in pixels, an edge may sink into a platform
	// and still count as touching that side.
	contactOffset = 6
	// ceilingSlack widens the band for head bumps.
	ceilingSlack = 4
	// ceilingDiagonal is the diagonal tolerance for head bumps.
	ceilingDiagonal = 10
)

// CollisionSystem tags the sides of the hero touching platforms and, while
// grounded, snaps the hero onto them.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (c *CollisionSystem) Update(w *ecs.World, _ float64) {
	hero, ok := findHero(w)
	if !ok {
		return
	}

	var platforms []geom.AABB
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		if o.Kind == component.KindPlatform && o.Collidable {
			platforms = append(platforms, o.Bounds)
		}
	})

	ResolveContacts(hero.transform, hero.body, *hero.box, hero.contacts, platforms)
}

// ResolveContacts classifies every platform overlapping the hit box into a
// touched side. The hit box is taken once, before any snap this frame, so
// the order of platforms does not change which ones are tested.
//
// While airborne only tags are set. While grounded a Down, Left or Right
// contact also moves the hero so it overlaps the platform by one pixel.
// Velocity reactions are left to MovementSystem.
//
// There is no swept test: a hero travelling further than a platform's depth
// in one frame can pass through it untagged.
func ResolveContacts(t *component.Transform, body *component.Body, box component.HitBox, contacts *component.Contacts, platforms []geom.AABB) {
	if t == nil || body == nil || contacts == nil {
		return
	}

	hit := box.Bounds(*t)
	w, h := box.W, box.H
	xLimit := w - contactOffset
	yLimit := h - contactOffset

	for _, p := range platforms {
		if !hit.Intersects(p) {
			continue
		}

		dx := hit.X - p.X
		dy := hit.Y - p.Y
		diagonal := math.Abs(math.Abs(dx) - math.Abs(dy))

		onTop := -h < dy && dy < -yLimit
		fromLeft := -w < dx && dx < -xLimit && dy > -yLimit
		fromRight := xLimit < dx && dx < w && dy > -yLimit

		if contacts.State == component.Airborne {
			switch {
			case onTop && diagonal > contactOffset && body.VY >= 0:
				contacts.Touched |= component.SideDown
			case yLimit-ceilingSlack < dy && dy < h && diagonal > ceilingDiagonal && body.VY < 0:
				contacts.Touched |= component.SideUp
			case fromLeft && body.VX > 0:
				contacts.Touched |= component.SideRight
			case fromRight && body.VX < 0:
				contacts.Touched |= component.SideLeft
			}
			continue
		}

		switch {
		case onTop && body.VY >= 0:
			contacts.Touched |= component.SideDown
			t.Y = p.Y - h + 1
		case fromLeft && body.VX > 0:
			contacts.Touched |= component.SideRight
			t.X = p.X - w + 1
		case fromRight && body.VX < 0:
			contacts.Touched |= component.SideLeft
			t.X = p.X + w - 1
		}
	}
}
