package component

// Coin adds Value to the session score the first time the hero touches it.
// Phase and BaseOffsetY drive the hover of its sprite.
type Coin struct {
	Value int

	Phase       float64
	BaseOffsetY float64
	Initialized bool
}

var CoinComponent = NewComponent[Coin]()
