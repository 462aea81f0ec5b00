package component

// LevelInfo describes the scene a world was built from.
type LevelInfo struct {
	Level      string
	Room       string
	Blink      bool
	Rotation   float64
	Background string
	Music      string
}

var LevelInfoComponent = NewComponent[LevelInfo]()
