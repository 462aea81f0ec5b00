package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// BackgroundTag marks the level background sprite, drawn before everything
// else.
type BackgroundTag struct{}

var BackgroundTagComponent = NewComponent[BackgroundTag]()
