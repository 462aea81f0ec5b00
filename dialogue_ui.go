package main

import (
	"image/color"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"golang.org/x/image/font/basicfont"
)

// dialogueUI is the NPC dialogue box: a title, an optional question with an
// answer field, and Next/Close buttons.
type dialogueUI struct {
	ui       *ebitenui.UI
	title    *widget.Text
	question *widget.Text
	answer   *widget.TextInput
	next     *widget.Button
	active   bool
	onClose  func()
}

func newDialogueUI(onNext func(answer string), onClose func()) *dialogueUI {
	d := &dialogueUI{onClose: onClose}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x20, A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	inputImg := imageui.NewNineSliceColor(color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	d.title = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
	)
	d.question = widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)
	d.answer = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(360, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{Idle: inputImg, Disabled: inputImg}),
		widget.TextInputOpts.Color(&widget.TextInputColor{Idle: color.Black, Disabled: color.Gray{Y: 120}, Caret: color.Black}),
		widget.TextInputOpts.Face(&face),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			onNext(args.InputText)
		}),
	)

	d.next = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Next", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onNext(d.answer.GetText())
		}),
	)
	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Close", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClose()
		}),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	buttons.AddChild(d.next)
	buttons.AddChild(closeBtn)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth*3/4, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionEnd}),
		),
	)
	panel.AddChild(d.title)
	panel.AddChild(d.question)
	panel.AddChild(d.answer)
	panel.AddChild(buttons)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	d.ui = &ebitenui.UI{Container: root}
	return d
}

// Show opens the box with view's content.
func (d *dialogueUI) Show(view system.DialogueView) {
	d.title.Label = view.Title
	d.question.Label = view.Question
	setVisible(d.question.GetWidget(), view.Question != "")
	setVisible(d.answer.GetWidget(), view.AskAnswer)
	setVisible(d.next.GetWidget(), view.CanAdvance)
	d.answer.SetText("")
	if view.AskAnswer {
		d.answer.Focus(true)
	}
	d.active = true
}

func (d *dialogueUI) Hide() {
	d.answer.Focus(false)
	d.active = false
}

func (d *dialogueUI) Active() bool {
	return d.active
}

func (d *dialogueUI) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		d.onClose()
		return
	}
	d.ui.Update()
}

func (d *dialogueUI) Draw(screen *ebiten.Image) {
	d.ui.Draw(screen)
}

func setVisible(w *widget.Widget, visible bool) {
	if visible {
		w.Visibility = widget.Visibility_Show
	} else {
		w.Visibility = widget.Visibility_Hide
	}
}

func (g *Game) openDialogue(w *ecs.World, e ecs.Entity) {
	npc, ok := ecs.Get(w, e, component.NPCComponent.Kind())
	if !ok {
		return
	}
	view, err := g.scripts.Open(npc)
	if err != nil {
		log.Printf("dialogue: %v", err)
		npc.Close()
		return
	}
	g.talking = npc
	g.dialogue.Show(view)
}

func (g *Game) advanceDialogue(answer string) {
	if g.talking == nil {
		return
	}
	view, err := g.scripts.Next(g.talking, answer, g.session)
	if err != nil {
		log.Printf("dialogue: %v", err)
		g.closeDialogue()
		return
	}
	g.dialogue.Show(view)
}

func (g *Game) closeDialogue() {
	if g.talking != nil {
		g.talking.Close()
		g.talking = nil
	}
	g.dialogue.Hide()
	g.clock.Reset(time.Now())
}
