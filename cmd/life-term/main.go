// Command life-term runs a simulation full screen in the terminal.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"mad-life/internal/app"
	"mad-life/internal/term"
	"mad-life/pkg/core"
	_ "mad-life/pkg/sims/life"
)

func main() {
	cfg, err := app.Load("life-term", os.Args[1:])
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	runner := term.NewRunner(screen, sim, cfg.TPS, cfg.Seed, uint64(cfg.Generations))
	err = runner.Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
