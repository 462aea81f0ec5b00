package component

// SoundRequest asks the AudioSystem to play a sound once, or looping when
// Loop is set. Each request lives on its own entity.
type SoundRequest struct {
	ID   string
	Loop bool
}

var SoundRequestComponent = NewComponent[SoundRequest]()

const (
	SoundJump  = "jump"
	SoundCoin  = "coin"
	SoundDeath = "death"
)
