// Package life implements Conway's Game of Life on a fixed-size torus with
// one bit of storage per cell.
package life

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"mad-life/pkg/core"
	"mad-life/pkg/seed"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

const (
	glyphDead  = '◻'
	glyphAlive = '◼'
)

// ErrStaleSeed reports a Reset of a coordinate-seeded universe whose
// dimensions changed since construction.
var ErrStaleSeed = errors.New("seed was built for different dimensions")

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Universe owns the cell state of one simulation session.
type Universe struct {
	w, h int
	cur  *bitset.BitSet
	nxt  *bitset.BitSet
	gen  uint64

	origin     seed.Seed
	originSize core.Size
	rngSeed    int64
}

// New allocates a w*h universe and sets every cell from s.
func New(w, h int, s seed.Seed) (*Universe, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new %dx%d universe: %w", w, h, ErrEmptyGrid)
	}
	u := &Universe{w: w, h: h, origin: s, originSize: core.Size{W: w, H: h}}
	u.alloc()
	u.fill(s)
	return u, nil
}

// NewWithConfig resolves cfg.Mode for the configured dimensions and
// constructs the universe. Nothing is returned on a resolution error.
func NewWithConfig(cfg Config) (*Universe, error) {
	size := core.Size{W: cfg.Width, H: cfg.Height}
	s, err := seed.Resolve(cfg.Mode, size, core.NewTimeRNG(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("new universe: %w", err)
	}
	u, err := New(cfg.Width, cfg.Height, s)
	if err != nil {
		return nil, err
	}
	u.rngSeed = cfg.Seed
	return u, nil
}

// Default builds the standard 64x64 universe seeded by mode.
func Default(mode string) (*Universe, error) {
	cfg := DefaultConfig()
	cfg.Mode = mode
	return NewWithConfig(cfg)
}

func (u *Universe) alloc() {
	n := uint(u.w * u.h)
	u.cur = bitset.New(n)
	u.nxt = bitset.New(n)
}

func (u *Universe) fill(s seed.Seed) {
	total := u.w * u.h
	for i := 0; i < total; i++ {
		if s.Alive(i) {
			u.cur.Set(uint(i))
		}
	}
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Mode returns the seed mode the universe was built from.
func (u *Universe) Mode() string { return u.origin.Name() }

// Generation returns the number of steps since construction, reset or resize.
func (u *Universe) Generation() uint64 { return u.gen }

// Population returns the number of live cells.
func (u *Universe) Population() int { return int(u.cur.Count()) }

// Words exposes the packed cell bits, 64 cells per word, least significant bit
// first. The slice is only valid until the next Step or resize and must not be
// modified.
func (u *Universe) Words() []uint64 { return u.cur.Bytes() }

// Index returns the linear index of (row, col).
func (u *Universe) Index(row, col int) (int, error) {
	size := u.Size()
	if !size.Contains(row, col) {
		return 0, &BoundsError{Row: row, Col: col, Width: u.w, Height: u.h}
	}
	return size.Index(row, col), nil
}

// Cell returns the state at (row, col).
func (u *Universe) Cell(row, col int) (Cell, error) {
	idx, err := u.Index(row, col)
	if err != nil {
		return Dead, err
	}
	if u.cur.Test(uint(idx)) {
		return Alive, nil
	}
	return Dead, nil
}

// Alive lists the live cells in row-major order.
func (u *Universe) Alive() []Coord {
	var out []Coord
	for i, ok := u.cur.NextSet(0); ok; i, ok = u.cur.NextSet(i + 1) {
		out = append(out, Coord{Row: int(i) / u.w, Col: int(i) % u.w})
	}
	return out
}

// SetCells marks every coordinate alive and leaves other cells untouched. The
// whole call is rejected, with no cell changed, if any coordinate is out of
// range.
func (u *Universe) SetCells(coords []Coord) error {
	idx := make([]uint, 0, len(coords))
	for _, c := range coords {
		i, err := u.Index(c.Row, c.Col)
		if err != nil {
			return fmt.Errorf("set cells: %w", err)
		}
		idx = append(idx, uint(i))
	}
	for _, i := range idx {
		u.cur.Set(i)
	}
	return nil
}

// SetWidth changes the number of columns. Every cell becomes dead.
func (u *Universe) SetWidth(w int) error {
	if w <= 0 {
		return fmt.Errorf("set width %d: %w", w, ErrEmptyGrid)
	}
	u.w = w
	u.clear()
	return nil
}

// SetHeight changes the number of rows. Every cell becomes dead.
func (u *Universe) SetHeight(h int) error {
	if h <= 0 {
		return fmt.Errorf("set height %d: %w", h, ErrEmptyGrid)
	}
	u.h = h
	u.clear()
	return nil
}

func (u *Universe) clear() {
	u.alloc()
	u.gen = 0
}

// Reset reseeds the universe from its original mode at the current
// dimensions. rngSeed feeds the random mode; zero picks a clock-derived seed.
// State is unchanged when resolution fails.
func (u *Universe) Reset(rngSeed int64) error {
	size := u.Size()
	s := u.origin
	if s.Kind() == seed.KindCoordinates {
		if size != u.originSize {
			return fmt.Errorf("reset %dx%d universe from %dx%d coordinates: %w",
				size.W, size.H, u.originSize.W, u.originSize.H, ErrStaleSeed)
		}
	} else {
		var err error
		s, err = seed.Resolve(s.Name(), size, core.NewTimeRNG(rngSeed))
		if err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	u.cur.ClearAll()
	u.fill(s)
	u.gen = 0
	u.rngSeed = rngSeed
	return nil
}

// Step advances the universe by one generation. Every cell reads only the
// previous generation; the buffers are swapped once all cells are computed.
func (u *Universe) Step() {
	u.nxt.ClearAll()
	for row := 0; row < u.h; row++ {
		for col := 0; col < u.w; col++ {
			idx := uint(row*u.w + col)
			n := u.liveNeighbors(row, col)
			if n == 3 || (n == 2 && u.cur.Test(idx)) {
				u.nxt.Set(idx)
			}
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
}

// liveNeighbors counts the eight toroidal neighbors of (row, col). Adding
// h-1 and w-1 modulo the dimensions steps backwards without going negative.
func (u *Universe) liveNeighbors(row, col int) int {
	count := 0
	for _, dr := range [3]int{u.h - 1, 0, 1} {
		for _, dc := range [3]int{u.w - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % u.h
			c := (col + dc) % u.w
			if u.cur.Test(uint(r*u.w + c)) {
				count++
			}
		}
	}
	return count
}

// Render draws the grid with one glyph per cell and a newline after each row.
func (u *Universe) Render() string {
	var b strings.Builder
	b.Grow(u.h * (u.w*len(string(glyphAlive)) + 1))
	for row := 0; row < u.h; row++ {
		for col := 0; col < u.w; col++ {
			if u.cur.Test(uint(row*u.w + col)) {
				b.WriteRune(glyphAlive)
			} else {
				b.WriteRune(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (u *Universe) String() string { return u.Render() }

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		u, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return u, nil
	})
}
