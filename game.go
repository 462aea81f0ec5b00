package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

const firstLevel = "Level1"

type Game struct {
	debug bool

	levels  levels.Provider
	hero    *prefabs.HeroSpec
	session *component.Session
	sounds  *assets.SoundBank

	render   *system.RenderSystem
	pipeline *ecs.Scheduler
	clock    *common.FrameClock

	// level is the current level's own data; rooms caches every scene built
	// for it, keyed by room name, so collected coins stay collected.
	level *levels.Level
	room  string
	scene *entity.Scene
	rooms map[string]*entity.Scene

	inMenu   bool
	quit     bool
	menu     *ebitenui.UI
	dialogue *dialogueUI
	scripts  *system.DialogueRunner
	talking  *component.NPC
	hud      *hud

	watcher *prefabs.Watcher
}

type GameOptions struct {
	Level     string
	Room      string
	Debug     bool
	LevelsDir string
	Watch     bool
}

// NewGame starts on the main menu unless opts names a level.
func NewGame(opts GameOptions) (*Game, error) {
	heroSpec, err := prefabs.LoadHeroSpec()
	if err != nil {
		return nil, fmt.Errorf("load hero: %w", err)
	}

	var provider levels.Provider = levels.EmbeddedProvider()
	if opts.LevelsDir != "" {
		provider = levels.DirProvider(opts.LevelsDir)
	}

	sounds := assets.NewSoundBank(assets.AudioContext())
	for _, a := range heroSpec.Audio {
		sounds.Register(a.Name, a.File, a.Volume)
	}

	g := &Game{
		debug:   opts.Debug,
		levels:  provider,
		hero:    heroSpec,
		session: &component.Session{},
		sounds:  sounds,
		render:  system.NewRenderSystem(time.Now),
		clock:   common.NewFrameClock(time.Now()),
		inMenu:  true,
		scripts: system.NewDialogueRunner(nil),
		hud:     newHUD(),
	}
	g.pipeline = system.NewPipeline(system.NewInputSystem(), sounds, g.render)
	g.menu = NewMenuUI(g)
	g.dialogue = newDialogueUI(g.advanceDialogue, g.closeDialogue)

	if opts.Watch {
		dirs := []string{"prefabs", filepath.Join("prefabs", "scripts")}
		if opts.LevelsDir != "" {
			dirs = append(dirs, opts.LevelsDir)
		}
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if opts.Level != "" {
		if err := g.enter(component.LevelChangeRequest{Level: opts.Level, Room: opts.Room}); err != nil {
			return nil, err
		}
		g.inMenu = false
	}
	return g, nil
}

// start leaves the menu for the first level.
func (g *Game) start() error {
	if err := g.enter(component.LevelChangeRequest{Level: firstLevel, Room: levels.DefaultRoom}); err != nil {
		return err
	}
	g.inMenu = false
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if g.inMenu {
		g.menu.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return g.start()
		}
		return nil
	}

	if g.dialogue.Active() {
		g.dialogue.Update()
		return nil
	}

	dt, ok := g.clock.Tick(time.Now())
	if !ok {
		return nil
	}

	w := g.scene.World
	g.pipeline.Update(w, dt)
	g.drainEvents(w)

	if req, ok := takeLevelChange(w); ok {
		return g.enter(req)
	}
	return nil
}

func (g *Game) drainEvents(w *ecs.World) {
	for _, ev := range w.Events().Drain() {
		switch ev.Type {
		case ecs.EventDialogueOpen:
			e, ok := ev.Data.(ecs.Entity)
			if !ok {
				continue
			}
			g.openDialogue(w, e)
		case ecs.EventHeroDied:
			if g.debug {
				log.Printf("hero died (%d)", g.session.Deaths)
			}
		}
	}
}

// takeLevelChange removes every pending LevelChangeRequest and returns the
// first one.
func takeLevelChange(w *ecs.World) (component.LevelChangeRequest, bool) {
	var (
		first component.LevelChangeRequest
		found bool
	)
	ecs.ForEach(w, component.LevelChangeRequestComponent.Kind(), func(e ecs.Entity, req *component.LevelChangeRequest) {
		if !found {
			first, found = *req, true
		}
		ecs.DestroyEntity(w, e)
	})
	return first, found
}

// enter switches to req's scene. An empty Level means the current level;
// entering another level drops the cached rooms of the previous one.
func (g *Game) enter(req component.LevelChangeRequest) error {
	levelID := req.Level
	if levelID == "" && g.level != nil {
		levelID = g.level.ID
	}
	room := req.Room
	if room == "" {
		room = levels.DefaultRoom
	}

	if g.level == nil || levelID != g.level.ID {
		lvl, err := g.levels.Level(levelID)
		if err != nil {
			return err
		}
		g.level = lvl
		g.rooms = make(map[string]*entity.Scene)
	}

	if sc, ok := g.rooms[room]; ok {
		g.scene = sc
		_ = ecs.Add(sc.World, sc.Hero, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
	} else {
		data, err := g.levels.Room(g.level, room)
		if err != nil {
			return err
		}
		sc, err := entity.BuildScene(data, g.hero, g.session, assets.LoadImage)
		if err != nil {
			return fmt.Errorf("build %s/%s: %w", g.level.ID, room, err)
		}
		g.rooms[room] = sc
		g.scene = sc
	}
	g.room = room

	// the key that opened the door must be released before the next one
	if p, ok := ecs.Get(g.scene.World, g.scene.Hero, component.PlayerComponent.Kind()); ok {
		p.InteractReady = false
	}
	g.clock.Reset(time.Now())
	return nil
}

// reload rebuilds the current scene after a data file changed on disk.
func (g *Game) reload() error {
	heroSpec, err := prefabs.LoadHeroSpec()
	if err != nil {
		return err
	}
	g.hero = heroSpec
	g.scripts.Forget()
	if g.level == nil {
		return nil
	}

	id, room := g.level.ID, g.room
	g.level = nil
	return g.enter(component.LevelChangeRequest{Level: id, Room: room})
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name := <-g.watcher.Events:
			log.Printf("reload: %s changed", name)
			changed = true
			continue
		case err := <-g.watcher.Errors:
			log.Printf("reload: watch: %v", err)
			continue
		default:
		}
		break
	}
	if !changed {
		return
	}
	if err := g.reload(); err != nil && !errors.Is(err, levels.ErrUnknownRoom) {
		log.Printf("reload: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.inMenu {
		g.menu.Draw(screen)
		return
	}

	g.render.Draw(g.scene.World, screen)
	g.hud.Draw(screen, g.session)
	if g.dialogue.Active() {
		g.dialogue.Draw(screen)
	}

	if g.debug {
		var heroColor color.Color
		if g.hero.DebugColor != nil {
			heroColor = g.hero.DebugColor.Color
		}
		system.DrawContactsDebug(g.scene.World, screen, heroColor)
		system.DrawHeroDebug(g.scene.World, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  %s/%s", ebiten.ActualFPS(), g.level.ID, g.room), 10, common.BaseHeight-20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.sounds.StopLoop()
}
