package component

import "strings"

type MovementState int

const (
	Airborne MovementState = iota
	Grounded
)

func (s MovementState) String() string {
	if s == Grounded {
		return "grounded"
	}
	return "airborne"
}

// Side is a bit set of touched sides.
type Side uint8

const (
	SideUp Side = 1 << iota
	SideDown
	SideLeft
	SideRight
)

func (s Side) Has(side Side) bool {
	return s&side != 0
}

func (s Side) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, p := range []struct {
		side Side
		name string
	}{{SideUp, "up"}, {SideDown, "down"}, {SideLeft, "left"}, {SideRight, "right"}} {
		if s.Has(p.side) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "|")
}

// Contacts is the hero's movement state plus the sides the collision
// resolver touched this frame.
type Contacts struct {
	State   MovementState
	Touched Side
}

var ContactsComponent = NewComponent[Contacts]()
