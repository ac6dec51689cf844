package main

import (
	"flag"
	"log"

	"chosenoffset.com/basegame/internal/config"
	"chosenoffset.com/basegame/internal/game"
	"chosenoffset.com/basegame/internal/render"
	ebitenrender "chosenoffset.com/basegame/internal/render/ebiten"
	"chosenoffset.com/basegame/internal/render/headless"
)

func main() {
	headlessFrames := flag.Int("headless", 0, "run this many frames without a window and exit")
	flag.Parse()

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid build configuration: %v", err)
	}

	var (
		engine    render.Engine
		input     render.InputManager
		resources render.ResourceLoader
	)
	if *headlessFrames > 0 {
		// No display: images only record draw calls.
		engine = headless.NewEngine(*headlessFrames)
		input = headless.NewInput()
		resources = &headless.Loader{}
	} else {
		engine = ebitenrender.NewEngine()
		input = ebitenrender.NewInputManager()
		resources = ebitenrender.NewResourceLoader()
	}

	loop := game.NewLoop(cfg, engine, input, resources)

	log.Printf("Starting game (%dx%d)...", cfg.Window.Width, cfg.Window.Height)
	if err := loop.Run(engine); err != nil {
		log.Fatal(err)
	}
}
