// Command diablo runs the game.
package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	diablo "github.com/techgnosis/diablo-clone"
)

var (
	configFlag = flag.String("config", "diablo.yaml", "config file path")
	seedFlag   = flag.Int64("seed", 0, "world seed override (0 keeps the config value)")
	debugFlag  = flag.Bool("debug", false, "start with the debug overlay on")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("[diablo] ")

	cfg, err := diablo.LoadConfig(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	game := diablo.NewGame(cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	sprites, err := diablo.LoadSpriteSet(cfg.SpriteDir)
	if err != nil {
		log.Fatal(err)
	}
	if sprites.Len() == 0 {
		log.Printf("no sprite sheets under %s, using shape rendering", cfg.SpriteDir)
	}
	game.SetSprites(sprites)

	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
