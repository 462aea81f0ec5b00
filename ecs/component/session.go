package component

// Session is the progress that outlives a single level world. The game owns
// one and attaches the same pointer to every world it builds.
type Session struct {
	Score  int
	Keys   int
	Deaths int
}

var SessionComponent = NewComponent[Session]()
