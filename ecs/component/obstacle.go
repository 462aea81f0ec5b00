package component

import (
	"fmt"

	"github.com/milk9111/platformer/geom"
)

type ObstacleKind int

const (
	KindPlatform ObstacleKind = iota
	KindCoin
	KindDoor
	KindHazard
	KindNPC
)

func (k ObstacleKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindCoin:
		return "coin"
	case KindDoor:
		return "door"
	case KindHazard:
		return "hazard"
	case KindNPC:
		return "npc"
	}
	return fmt.Sprintf("obstacle(%d)", int(k))
}

// Obstacle is a static piece of level geometry. Bounds never change after
// load; Collidable and Visible flip when a pickup is consumed.
type Obstacle struct {
	Kind       ObstacleKind
	Bounds     geom.AABB
	Collidable bool
	Visible    bool
}

var ObstacleComponent = NewComponent[Obstacle]()
