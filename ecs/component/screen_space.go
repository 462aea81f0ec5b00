package component

// ScreenPosition is written by the RenderSystem every frame: world position
// minus camera offset.
type ScreenPosition struct {
	X float64
	Y float64
}

var ScreenPositionComponent = NewComponent[ScreenPosition]()
