package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"scene-demos/internal/config"
	"scene-demos/internal/frameloop"
	"scene-demos/internal/input/ebinput"
	"scene-demos/internal/quad"
	"scene-demos/internal/render2d"
)

func main() {
	cfgPath := flag.String("config", config.ConfigPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quad: %v\n", err)
		os.Exit(1)
	}
	w, h := cfg.Window.Width, cfg.Window.Height
	title := cfg.Window.Title
	if title == "" {
		title = "Mouse-following Quad"
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.Window.FPS)

	game := render2d.NewGame(w, h, ebinput.New(w, h), &frameloop.Quad{State: &quad.State{}})
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "quad: %v\n", err)
		os.Exit(1)
	}
}
