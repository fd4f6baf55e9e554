//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Order != "rgba" {
		log.Printf("ebiten expects rgba pixels, ignoring -order %s", cfg.Order)
		cfg.Order = "rgba"
	}

	sim, err := app.NewSim(cfg, app.LogObserver(log.Default(), cfg.Quiet))
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUD)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("torus-life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
