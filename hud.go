package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const (
	hudIconSize = 32
	hudMargin   = 16
)

// hud draws the coin counter and, once earned, the key icon.
type hud struct {
	coin *ebiten.Image
	key  *ebiten.Image
	face ebtext.Face
}

func newHUD() *hud {
	h := &hud{face: ebtext.NewGoXFace(basicfont.Face7x13)}
	var err error
	if h.coin, err = assets.LoadImage("coin.png"); err != nil {
		log.Printf("hud: %v", err)
	}
	if h.key, err = assets.LoadImage("key.png"); err != nil {
		log.Printf("hud: %v", err)
	}
	return h
}

func (h *hud) Draw(screen *ebiten.Image, sess *component.Session) {
	if sess == nil {
		return
	}

	x := float64(hudMargin)
	y := float64(hudMargin)
	drawIcon(screen, h.coin, x, y)

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x+hudIconSize+6, y+hudIconSize/2-7)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, fmt.Sprintf("x%d", sess.Score), h.face, op)

	for i := 0; i < sess.Keys; i++ {
		drawIcon(screen, h.key, x+float64(i)*(hudIconSize+4), y+hudIconSize+8)
	}
}

func drawIcon(screen, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	op.GeoM.Scale(hudIconSize/float64(b.Dx()), hudIconSize/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
