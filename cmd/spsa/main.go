package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/prefabs"
)

const (
	screenSize = 512
	tps        = 60
)

// demoGame plays one hero attitude from the sheet named in hero.yaml.
// Left/Right cycle through attitudes, Space restarts the current one.
type demoGame struct {
	sheet *ebiten.Image
	anim  *component.Animation
	scale float64
}

func (g *demoGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.anim.Restart(component.Attitude((int(g.anim.Attitude) + 1) % (int(component.Dead) + 1)))
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		n := int(component.Dead) + 1
		g.anim.Restart(component.Attitude((int(g.anim.Attitude) + n - 1) % n))
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.anim.Restart(g.anim.Attitude)
	}
	g.anim.Advance(1.0 / tps)
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s frame %d", g.anim.Attitude, g.anim.Frame))

	r := g.anim.FrameRect()
	if g.sheet == nil || r.Empty() {
		return
	}
	frame := g.sheet.SubImage(r).(*ebiten.Image)
	fw, fh := float64(r.Dx())*g.scale, float64(r.Dy())*g.scale

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(g.anim.ScaleX()*g.scale, g.scale)
	if g.anim.Mirror {
		op.GeoM.Translate(fw, 0)
	}
	op.GeoM.Translate((screenSize-fw)/2, (screenSize-fh)/2)
	screen.DrawImage(frame, op)
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	attitude := flag.String("attitude", "idle", "attitude to start with")
	scale := flag.Float64("scale", 4, "pixel scale")
	flag.Parse()

	spec, err := prefabs.LoadHeroSpec()
	if err != nil {
		log.Fatal(err)
	}
	defs, err := entity.AnimationDefs(spec.Animation)
	if err != nil {
		log.Fatal(err)
	}
	start, err := component.ParseAttitude(*attitude)
	if err != nil {
		log.Fatal(err)
	}
	sheet, err := assets.LoadImage(spec.Animation.Sheet)
	if err != nil {
		log.Fatalf("failed to load %s: %v", spec.Animation.Sheet, err)
	}
	if b := sheet.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		log.Fatalf("%s is empty", spec.Animation.Sheet)
	}

	anim := &component.Animation{Sheet: sheet, Defs: defs, Interval: spec.Animation.Interval}
	anim.Restart(start)

	g := &demoGame{sheet: sheet, anim: anim, scale: *scale}
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("Hero Animation Demo")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
