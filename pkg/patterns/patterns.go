// Package patterns holds the catalog of named starting shapes that can seed a
// Life universe.
package patterns

import (
	"slices"
	"sort"

	"mad-life/pkg/core"
)

// Offset is a live cell position relative to the pattern origin.
type Offset struct {
	Col int
	Row int
}

// Pattern is a named, immutable set of live cell offsets together with the
// smallest grid it may be placed on.
type Pattern struct {
	Name      string
	MinWidth  int
	MinHeight int
	cells     []Offset
}

// Offsets returns a copy of the pattern's live cells.
func (p Pattern) Offsets() []Offset { return slices.Clone(p.cells) }

// Len returns the number of live cells in the pattern.
func (p Pattern) Len() int { return len(p.cells) }

// MinSize returns the minimum grid dimensions as a core.Size.
func (p Pattern) MinSize() core.Size { return core.Size{W: p.MinWidth, H: p.MinHeight} }

// Fits reports whether a grid of the given size can hold p. Width and height
// are checked independently.
func Fits(p Pattern, size core.Size) bool {
	need := p.MinSize()
	return size.W >= need.W && size.H >= need.H
}

var catalog = map[string]Pattern{
	"glider": {
		Name:      "glider",
		MinWidth:  4,
		MinHeight: 4,
		cells:     []Offset{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}},
	},
	"copper_head_spaceship": {
		Name:      "copper_head_spaceship",
		MinWidth:  10,
		MinHeight: 14,
		cells: []Offset{
			{2, 1}, {3, 1}, {6, 1}, {7, 1}, {4, 2}, {5, 2}, {4, 3}, {5, 3}, {1, 4}, {3, 4}, {6, 4}, {8, 4},
			{1, 5}, {8, 5}, {1, 7}, {8, 7}, {2, 8}, {3, 8}, {6, 8}, {7, 8}, {3, 9}, {4, 9}, {5, 9}, {6, 9},
			{4, 11}, {5, 11}, {4, 12}, {5, 12},
		},
	},
	"lightweight_spaceship": {
		Name:      "lightweight_spaceship",
		MinWidth:  7,
		MinHeight: 6,
		cells:     []Offset{{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}},
	},
	"blinker": {
		Name:      "blinker",
		MinWidth:  3,
		MinHeight: 3,
		cells:     []Offset{{1, 0}, {1, 1}, {1, 2}},
	},
}

// Lookup returns the pattern registered under name. Only exact matches count.
func Lookup(name string) (Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Names lists the catalog in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
