// Package seed resolves a seed mode name into the initial alive/dead state of
// a fresh universe.
package seed

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"mad-life/pkg/core"
	"mad-life/pkg/patterns"
)

// ModeRandom fills each cell alive with probability one half.
const ModeRandom = "random"

var (
	// ErrGridTooSmall reports a pattern that does not fit the requested grid.
	ErrGridTooSmall = errors.New("grid too small for pattern")
	// ErrEmptyGrid reports a grid with a zero dimension.
	ErrEmptyGrid = errors.New("grid has zero width or height")
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Kind identifies the resolution strategy behind a Seed.
type Kind uint8

const (
	KindFallback Kind = iota
	KindPattern
	KindCoordinates
	KindRandom
)

func (k Kind) String() string {
	switch k {
	case KindPattern:
		return "pattern"
	case KindCoordinates:
		return "coordinates"
	case KindRandom:
		return "random"
	default:
		return "fallback"
	}
}

// Seed answers whether a cell index starts alive. Pattern and coordinate seeds
// hold a precomputed index set; the random seed draws from its RNG on every
// call; the fallback is a fixed formula of the index.
type Seed struct {
	kind  Kind
	name  string
	alive *bitset.BitSet
	rng   *core.RNG
}

// Kind returns the strategy of s.
func (s Seed) Kind() Kind { return s.kind }

// Name returns the pattern name for pattern seeds and the mode otherwise.
func (s Seed) Name() string { return s.name }

// Alive reports whether cell i starts alive.
func (s Seed) Alive(i int) bool {
	switch s.kind {
	case KindPattern, KindCoordinates:
		return i >= 0 && s.alive.Test(uint(i))
	case KindRandom:
		return s.rng.Bool()
	default:
		return Fallback(i)
	}
}

// Indices lists the live indices of a pattern or coordinate seed in ascending
// order. Other kinds return nil.
func (s Seed) Indices() []int {
	if s.alive == nil {
		return nil
	}
	out := make([]int, 0, s.alive.Count())
	for i, ok := s.alive.NextSet(0); ok; i, ok = s.alive.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Fallback is the deterministic default fill.
func Fallback(i int) bool { return i%2 == 0 || i%7 == 0 }

// Modes lists every named mode Resolve treats specially.
func Modes() []string {
	modes := append(patterns.Names(), ModeRandom)
	slices.Sort(modes)
	return modes
}

// Resolve maps mode to a Seed for a grid of the given size. Registered pattern
// names are centered on the grid and must fit it; "random" draws from rng
// (seeded from the clock when nil); any other name uses the fallback formula.
func Resolve(mode string, size core.Size, rng *core.RNG) (Seed, error) {
	if size.Empty() {
		return Seed{}, fmt.Errorf("resolve %q on %dx%d: %w", mode, size.W, size.H, ErrEmptyGrid)
	}
	if p, ok := patterns.Lookup(mode); ok {
		return centered(p, size)
	}
	if mode == ModeRandom {
		if rng == nil {
			rng = core.NewTimeRNG(0)
		}
		return Seed{kind: KindRandom, name: mode, rng: rng}, nil
	}
	return Seed{kind: KindFallback, name: mode}, nil
}

func centered(p patterns.Pattern, size core.Size) (Seed, error) {
	if !patterns.Fits(p, size) {
		need := p.MinSize()
		return Seed{}, fmt.Errorf("pattern %q needs %dx%d, grid is %dx%d: %w",
			p.Name, need.W, need.H, size.W, size.H, ErrGridTooSmall)
	}
	alive := bitset.New(uint(size.Area()))
	for _, off := range p.Offsets() {
		row, col := size.Wrap(off.Row+size.H/2, off.Col+size.W/2)
		alive.Set(uint(size.Index(row, col)))
	}
	return Seed{kind: KindPattern, name: p.Name, alive: alive}, nil
}

// FromCoordinates builds a seed from raw offsets anchored at the grid origin.
func FromCoordinates(offsets []patterns.Offset, size core.Size) (Seed, error) {
	if size.Empty() {
		return Seed{}, fmt.Errorf("coordinates on %dx%d: %w", size.W, size.H, ErrEmptyGrid)
	}
	alive := bitset.New(uint(size.Area()))
	for _, off := range offsets {
		if !size.Contains(off.Row, off.Col) {
			return Seed{}, fmt.Errorf("offset (col %d, row %d) on %dx%d: %w",
				off.Col, off.Row, size.W, size.H, ErrOutOfBounds)
		}
		alive.Set(uint(size.Index(off.Row, off.Col)))
	}
	return Seed{kind: KindCoordinates, name: "coordinates", alive: alive}, nil
}
