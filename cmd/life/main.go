// Command life prints successive generations of a Life universe as text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/pkg/sims/life"
)

const defaultGenerations = 10

func main() {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fast := fs.Bool("fast", false, "print without pacing to -tps")
	cfg := app.NewConfig()
	cfg.Generations = defaultGenerations
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if cfg.List {
		if err := app.WriteList(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	u, err := life.NewWithConfig(cfg.Life())
	if err != nil {
		log.Fatal(err)
	}
	var pace *core.FixedStep
	if !*fast {
		pace = core.NewFixedStep(cfg.TPS)
	}
	run(os.Stdout, u, cfg.Generations, pace)
}

// run prints the initial state followed by n generations. With n == 0 it
// never returns.
func run(w io.Writer, u *life.Universe, n int, pace *core.FixedStep) {
	for {
		fmt.Fprintf(w, "generation %d, population %d\n%s\n", u.Generation(), u.Population(), u.Render())
		if n > 0 && u.Generation() >= uint64(n) {
			return
		}
		if pace != nil {
			for !pace.ShouldStep() {
				time.Sleep(pace.Interval() / 8)
			}
		}
		u.Step()
	}
}
