package patterns

import (
	"slices"
	"testing"

	"mad-life/pkg/core"
)

func TestLookupReferenceCatalog(t *testing.T) {
	cases := []struct {
		name       string
		cells      int
		minW, minH int
	}{
		{"glider", 5, 4, 4},
		{"copper_head_spaceship", 28, 10, 14},
	}
	for _, tc := range cases {
		p, ok := Lookup(tc.name)
		if !ok {
			t.Fatalf("expected %q to be registered", tc.name)
		}
		if p.Len() != tc.cells {
			t.Fatalf("%s: expected %d cells, got %d", tc.name, tc.cells, p.Len())
		}
		if p.MinWidth != tc.minW || p.MinHeight != tc.minH {
			t.Fatalf("%s: expected min (%d,%d), got (%d,%d)", tc.name, tc.minW, tc.minH, p.MinWidth, p.MinHeight)
		}
	}
}

func TestLookupExactMatchOnly(t *testing.T) {
	for _, name := range []string{"", "Glider", "glide", "glider ", "random"} {
		if _, ok := Lookup(name); ok {
			t.Fatalf("lookup of %q should fail", name)
		}
	}
}

func TestFitsChecksBothAxes(t *testing.T) {
	p, _ := Lookup("copper_head_spaceship")

	if Fits(p, core.Size{W: 5, H: 5}) {
		t.Fatal("5x5 grid must not fit the copper head")
	}
	if !Fits(p, core.Size{W: 10, H: 14}) {
		t.Fatal("10x14 grid must fit the copper head")
	}
	// Wide enough but too short: only a height check rejects this.
	if Fits(p, core.Size{W: 40, H: 13}) {
		t.Fatal("height below minimum must not fit")
	}
	if Fits(p, core.Size{W: 9, H: 40}) {
		t.Fatal("width below minimum must not fit")
	}
}

func TestCatalogOffsetsInsideMinimumBox(t *testing.T) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		seen := map[Offset]bool{}
		for _, off := range p.Offsets() {
			if off.Col < 0 || off.Col >= p.MinWidth || off.Row < 0 || off.Row >= p.MinHeight {
				t.Fatalf("%s: offset %+v outside %dx%d", name, off, p.MinWidth, p.MinHeight)
			}
			if seen[off] {
				t.Fatalf("%s: duplicate offset %+v", name, off)
			}
			seen[off] = true
		}
	}
}

func TestOffsetsReturnsCopy(t *testing.T) {
	p, _ := Lookup("glider")
	offs := p.Offsets()
	offs[0] = Offset{Col: 99, Row: 99}

	again, _ := Lookup("glider")
	if slices.Contains(again.Offsets(), Offset{Col: 99, Row: 99}) {
		t.Fatal("mutating Offsets() result must not change the catalog")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "glider") || !slices.Contains(names, "copper_head_spaceship") {
		t.Fatalf("reference patterns missing from %v", names)
	}
}
