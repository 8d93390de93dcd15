package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/caarlos0/env/v11"

	"mad-life/pkg/core"
	"mad-life/pkg/seed"
	"mad-life/pkg/sims/life"
)

// Config represents the settings shared by every driver. Values come from
// NewConfig, then MADLIFE_* environment variables, then command-line flags.
type Config struct {
	Sim         string `env:"MADLIFE_SIM"`
	Mode        string `env:"MADLIFE_MODE"`
	Width       int    `env:"MADLIFE_WIDTH"`
	Height      int    `env:"MADLIFE_HEIGHT"`
	Seed        int64  `env:"MADLIFE_SEED"`
	TPS         int    `env:"MADLIFE_TPS"`
	Scale       int    `env:"MADLIFE_SCALE"`
	Generations int    `env:"MADLIFE_GENERATIONS"`

	List bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{Sim: "life", Width: d.Width, Height: d.Height, TPS: 15, Scale: 6}
}

// LoadEnv overlays any MADLIFE_* environment variables onto c.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Current field
// values become the flag defaults, so call LoadEnv first.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Mode, "mode", c.Mode, "seed mode: a pattern name, \"random\", or anything else for the fallback fill")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random mode (0 picks one from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs forever)")
	fs.BoolVar(&c.List, "list", c.List, "list the registered sims and named seed modes, then exit")
}

// Validate rejects settings no driver can run with.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(core.Names(), c.Sim) {
		errs = append(errs, fmt.Errorf("unknown sim %q, have %v", c.Sim, core.Names()))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must not be negative, got %d", c.Generations))
	}
	return errors.Join(errs...)
}

// WriteList prints the registered simulations followed by the named seed
// modes, one per line.
func WriteList(w io.Writer) error {
	for _, name := range core.Names() {
		if _, err := fmt.Fprintf(w, "sim  %s\n", name); err != nil {
			return err
		}
	}
	for _, m := range seed.Modes() {
		if _, err := fmt.Fprintf(w, "mode %s\n", m); err != nil {
			return err
		}
	}
	return nil
}

// Life returns the universe configuration described by c.
func (c *Config) Life() life.Config {
	return life.Config{Width: c.Width, Height: c.Height, Mode: c.Mode, Seed: c.Seed}
}

// Load builds a Config from defaults, the environment and args, in that order
// of increasing precedence.
func Load(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
