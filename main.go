package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/logger"
)

func main() {
	debug := flag.Bool("debug", false, "draw the follow band and enable every debug channel")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	watch := flag.Bool("watch", false, "reload prefabs and levels when their files change")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	logger.EnableFromEnv()
	if *debug {
		logger.Enable("*")
	}

	game, err := NewGame(Options{
		Level: *levelName,
		Debug: *debug,
		Watch: *watch,
		Mute:  *mute,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.viewSize())
	ebiten.SetWindowTitle("platformer")

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
