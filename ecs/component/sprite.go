package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a static image drawn at the entity's screen position. Fill is
// used when no image could be loaded. OffsetX/OffsetY and W/H override the
// draw rectangle when it differs from the collision bounds.
type Sprite struct {
	Name    string
	Image   *ebiten.Image
	Fill    color.Color
	OffsetX float64
	OffsetY float64
	W       float64
	H       float64
}

var SpriteComponent = NewComponent[Sprite]()
