package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "start in this level (e.g. Level1) instead of the menu")
	roomName := flag.String("room", "", "room of -level to start in")
	levelsDir := flag.String("levels-dir", "", "read levels from this directory instead of the embedded ones")
	watch := flag.Bool("watch", false, "reload prefabs, scripts and levels when they change on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("platformer")

	game, err := NewGame(GameOptions{
		Level:     *levelName,
		Room:      *roomName,
		Debug:     *debug,
		LevelsDir: *levelsDir,
		Watch:     *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
