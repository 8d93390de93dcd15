package life

import (
	"fmt"
	"strconv"
)

// Config controls the dimensions and seeding of a Life universe.
type Config struct {
	Width  int
	Height int
	Mode   string
	// Seed feeds the random mode. Zero picks a clock-derived seed.
	Seed int64
}

// DefaultConfig returns the standard 64x64 configuration with the fallback fill.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Missing keys keep their defaults. Values that do not parse are an error;
// parsed dimensions are passed through unchanged so that New can reject them.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse w %q: %w", v, err)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse h %q: %w", v, err)
		}
		c.Height = parsed
	}
	if v, ok := cfg["mode"]; ok {
		c.Mode = v
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse seed %q: %w", v, err)
		}
		c.Seed = parsed
	}
	return c, nil
}

// Map renders the config back into the key/value form accepted by FromMap.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"mode": c.Mode,
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
