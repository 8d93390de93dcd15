//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mad-life/internal/app"
	"mad-life/pkg/core"
	_ "mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load("ca", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if cfg.List {
		if err := app.WriteList(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	sim, err := core.Build(cfg.Sim, cfg.Life().Map())
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
