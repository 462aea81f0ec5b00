package component

// LevelChangeRequest is a one-shot request emitted by gameplay systems to ask
// the outer game loop to switch scene. An empty Level means the current one.
//
// Systems only emit data; the Game loop owns IO and world reinitialization.
type LevelChangeRequest struct {
	Level string
	Room  string
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
