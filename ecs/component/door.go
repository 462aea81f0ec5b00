package component

import "strings"

// Door moves the hero to another room or level.
type Door struct {
	Destination string
}

var DoorComponent = NewComponent[Door]()

// DefaultRoom is the room a level starts in.
const DefaultRoom = "default"

// Request maps the destination to a scene change. Destinations naming a Room
// stay in the current level, destinations naming a Level enter that level's
// default room, anything else returns to the current level's default room.
func (d Door) Request() LevelChangeRequest {
	switch {
	case strings.Contains(d.Destination, "Room"):
		return LevelChangeRequest{Room: d.Destination}
	case strings.Contains(d.Destination, "Level"):
		return LevelChangeRequest{Level: d.Destination, Room: DefaultRoom}
	default:
		return LevelChangeRequest{Room: DefaultRoom}
	}
}
