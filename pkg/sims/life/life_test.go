package life

import (
	"errors"
	"slices"
	"testing"

	"mad-life/pkg/core"
	"mad-life/pkg/patterns"
	"mad-life/pkg/seed"
)

func empty(t *testing.T, w, h int) *Universe {
	t.Helper()
	s, err := seed.FromCoordinates(nil, core.Size{W: w, H: h})
	if err != nil {
		t.Fatalf("empty seed: %v", err)
	}
	u, err := New(w, h, s)
	if err != nil {
		t.Fatalf("new universe: %v", err)
	}
	return u
}

func mustSet(t *testing.T, u *Universe, coords ...Coord) {
	t.Helper()
	if err := u.SetCells(coords); err != nil {
		t.Fatalf("set cells: %v", err)
	}
}

func shifted(coords []Coord, dr, dc int, size core.Size) []Coord {
	out := make([]Coord, 0, len(coords))
	for _, c := range coords {
		r, col := size.Wrap(c.Row+dr, c.Col+dc)
		out = append(out, Coord{Row: r, Col: col})
	}
	slices.SortFunc(out, func(a, b Coord) int {
		return size.Index(a.Row, a.Col) - size.Index(b.Row, b.Col)
	})
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	life := empty(t, 5, 5)
	mustSet(t, life, Coord{1, 2}, Coord{2, 2}, Coord{3, 2})

	life.Step()
	want := []Coord{{2, 1}, {2, 2}, {2, 3}}
	if got := life.Alive(); !slices.Equal(got, want) {
		t.Fatalf("after first step alive=%v, expected %v", got, want)
	}

	life.Step()
	want = []Coord{{1, 2}, {2, 2}, {3, 2}}
	if got := life.Alive(); !slices.Equal(got, want) {
		t.Fatalf("after second step alive=%v, expected %v", got, want)
	}
	if life.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", life.Generation())
	}
}

func TestToroidalWraparoundAtCorner(t *testing.T) {
	const w, h = 6, 5
	u := empty(t, w, h)
	mustSet(t, u, Coord{0, 0})

	neighbors := map[Coord]bool{
		{h - 1, w - 1}: true, {h - 1, 0}: true, {h - 1, 1}: true,
		{0, w - 1}: true, {0, 1}: true,
		{1, w - 1}: true, {1, 0}: true, {1, 1}: true,
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			got := u.liveNeighbors(row, col)
			want := 0
			if neighbors[Coord{row, col}] {
				want = 1
			}
			if got != want {
				t.Fatalf("cell (%d,%d) counted %d live neighbors, expected %d", row, col, got, want)
			}
		}
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	u := empty(t, 12, 9)
	for i := 0; i < 20; i++ {
		u.Step()
		if u.Population() != 0 {
			t.Fatalf("dead grid came alive at generation %d", u.Generation())
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	for _, size := range []core.Size{{W: 4, H: 4}, {W: 9, H: 7}} {
		u := empty(t, size.W, size.H)
		mustSet(t, u, Coord{1, 1}, Coord{1, 2}, Coord{2, 1}, Coord{2, 2})
		before := u.Alive()
		for i := 0; i < 5; i++ {
			u.Step()
			if got := u.Alive(); !slices.Equal(got, before) {
				t.Fatalf("%dx%d: block changed at generation %d: %v", size.W, size.H, u.Generation(), got)
			}
		}
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	u, err := NewWithConfig(Config{Width: 8, Height: 8, Mode: "glider"})
	if err != nil {
		t.Fatalf("new universe: %v", err)
	}
	start := u.Alive()
	if len(start) != 5 {
		t.Fatalf("expected 5 live cells, got %d", len(start))
	}

	for i := 0; i < 4; i++ {
		u.Step()
	}
	want := shifted(start, 1, 1, u.Size())
	if got := u.Alive(); !slices.Equal(got, want) {
		t.Fatalf("after 4 generations alive=%v, expected %v", got, want)
	}

	// Eight more periods carry it all the way around the torus.
	for i := 0; i < 28; i++ {
		u.Step()
	}
	if got := u.Alive(); !slices.Equal(got, start) {
		t.Fatalf("after 32 generations alive=%v, expected %v", got, start)
	}
}

func TestSpaceshipsKeepShape(t *testing.T) {
	cases := []struct {
		mode   string
		period int
		dr, dc int
	}{
		{"copper_head_spaceship", 10, -1, 0},
		{"lightweight_spaceship", 4, 0, -2},
	}
	for _, tc := range cases {
		u, err := Default(tc.mode)
		if err != nil {
			t.Fatalf("%s: %v", tc.mode, err)
		}
		start := u.Alive()
		for i := 0; i < tc.period; i++ {
			u.Step()
		}
		want := shifted(start, tc.dr, tc.dc, u.Size())
		if got := u.Alive(); !slices.Equal(got, want) {
			t.Fatalf("%s: after one period alive=%v, expected %v", tc.mode, got, want)
		}
	}
}

func TestCopperHeadSufficiencyGate(t *testing.T) {
	u, err := NewWithConfig(Config{Width: 5, Height: 5, Mode: "copper_head_spaceship"})
	if !errors.Is(err, seed.ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall, got %v", err)
	}
	if u != nil {
		t.Fatal("no universe may be returned when construction fails")
	}

	u, err = NewWithConfig(Config{Width: 10, Height: 14, Mode: "copper_head_spaceship"})
	if err != nil {
		t.Fatalf("10x14 copper head: %v", err)
	}
	if u.Population() != 28 {
		t.Fatalf("expected 28 live cells, got %d", u.Population())
	}
	p, _ := patterns.Lookup("copper_head_spaceship")
	for _, off := range p.Offsets() {
		row, col := (off.Row+7)%14, (off.Col+5)%10
		c, err := u.Cell(row, col)
		if err != nil || c != Alive {
			t.Fatalf("expected (%d,%d) alive, got %v (%v)", row, col, c, err)
		}
	}
}

func TestDeterministicFallback(t *testing.T) {
	want := []int{0, 2, 4, 6, 7, 8, 10, 12, 14, 16, 18}
	for run := 0; run < 2; run++ {
		u, err := NewWithConfig(Config{Width: 5, Height: 4, Mode: "unknown"})
		if err != nil {
			t.Fatalf("new universe: %v", err)
		}
		var got []int
		for _, c := range u.Alive() {
			got = append(got, c.Row*5+c.Col)
		}
		if !slices.Equal(got, want) {
			t.Fatalf("run %d: alive indices %v, expected %v", run, got, want)
		}
	}
}

func TestZeroSizedUniverseRejected(t *testing.T) {
	for _, cfg := range []Config{{Width: 0, Height: 4}, {Width: 4, Height: 0}} {
		u, err := NewWithConfig(cfg)
		if !errors.Is(err, ErrEmptyGrid) || u != nil {
			t.Fatalf("%+v: expected ErrEmptyGrid and nil universe, got %v, %v", cfg, u, err)
		}
	}
	if _, err := New(0, 3, seed.Seed{}); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("expected ErrEmptyGrid from New, got %v", err)
	}
}

func TestResizeResetsState(t *testing.T) {
	u, err := NewWithConfig(Config{Width: 16, Height: 16, Mode: "random", Seed: 3})
	if err != nil {
		t.Fatalf("new universe: %v", err)
	}
	for i := 0; i < 3; i++ {
		u.Step()
	}
	if u.Population() == 0 {
		t.Fatal("expected some live cells before resize")
	}

	if err := u.SetWidth(20); err != nil {
		t.Fatalf("set width: %v", err)
	}
	if u.Width() != 20 || u.Population() != 0 || u.Generation() != 0 {
		t.Fatalf("after width resize: w=%d pop=%d gen=%d", u.Width(), u.Population(), u.Generation())
	}
	if got := len(u.Words()); got != (20*16+63)/64 {
		t.Fatalf("storage holds %d words for 20x16", got)
	}

	mustSet(t, u, Coord{15, 19})
	if err := u.SetHeight(10); err != nil {
		t.Fatalf("set height: %v", err)
	}
	for row := 0; row < u.Height(); row++ {
		for col := 0; col < u.Width(); col++ {
			if c, _ := u.Cell(row, col); c != Dead {
				t.Fatalf("cell (%d,%d) %v after height resize", row, col, c)
			}
		}
	}
	if _, err := u.Cell(15, 19); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected old coordinate to be out of bounds, got %v", err)
	}

	if err := u.SetWidth(0); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("expected ErrEmptyGrid, got %v", err)
	}
	if u.Width() != 20 {
		t.Fatalf("rejected resize changed width to %d", u.Width())
	}
}

func TestSetCellsIdempotent(t *testing.T) {
	u := empty(t, 6, 6)
	mustSet(t, u, Coord{1, 1})
	before := u.Render()

	mustSet(t, u)
	if u.Render() != before {
		t.Fatal("empty set_cells changed the grid")
	}

	coords := []Coord{{0, 0}, {2, 3}, {5, 5}}
	mustSet(t, u, coords...)
	once := u.Render()
	mustSet(t, u, coords...)
	if u.Render() != once {
		t.Fatal("repeating set_cells changed the grid")
	}
	if u.Population() != 4 {
		t.Fatalf("set_cells must keep existing live cells, population %d", u.Population())
	}
}

func TestSetCellsRejectsOutOfRange(t *testing.T) {
	u := empty(t, 4, 3)
	err := u.SetCells([]Coord{{0, 0}, {3, 0}})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	var be *BoundsError
	if !errors.As(err, &be) || be.Row != 3 || be.Col != 0 || be.Width != 4 || be.Height != 3 {
		t.Fatalf("unexpected bounds error %#v", be)
	}
	if u.Population() != 0 {
		t.Fatal("rejected set_cells must leave the grid untouched")
	}
	for _, c := range []Coord{{-1, 0}, {0, -1}, {0, 4}} {
		if _, err := u.Index(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("index %v: expected ErrOutOfBounds, got %v", c, err)
		}
	}
	if idx, err := u.Index(2, 3); err != nil || idx != 11 {
		t.Fatalf("index (2,3) = %d, %v", idx, err)
	}
}

func TestRender(t *testing.T) {
	u := empty(t, 3, 2)
	mustSet(t, u, Coord{0, 1}, Coord{1, 2})
	want := "◻◼◻\n◻◻◼\n"
	if got := u.Render(); got != want {
		t.Fatalf("render %q, expected %q", got, want)
	}
	if u.String() != want {
		t.Fatal("String must match Render")
	}
}

func TestResetReplaysMode(t *testing.T) {
	u, err := NewWithConfig(Config{Width: 12, Height: 12, Mode: "glider"})
	if err != nil {
		t.Fatalf("new universe: %v", err)
	}
	start := u.Alive()
	u.Step()
	u.Step()
	if err := u.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := u.Alive(); !slices.Equal(got, start) || u.Generation() != 0 {
		t.Fatalf("reset alive=%v gen=%d, expected %v gen 0", got, u.Generation(), start)
	}

	if err := u.SetWidth(3); err != nil {
		t.Fatalf("set width: %v", err)
	}
	if err := u.Reset(0); !errors.Is(err, seed.ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall after shrinking, got %v", err)
	}
	if u.Population() != 0 {
		t.Fatal("failed reset must leave state unchanged")
	}
}

func TestResetRandomDeterministicForSeed(t *testing.T) {
	u, err := NewWithConfig(Config{Width: 10, Height: 10, Mode: "random", Seed: 11})
	if err != nil {
		t.Fatalf("new universe: %v", err)
	}
	first := u.Render()
	u.Step()
	if err := u.Reset(11); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if u.Render() != first {
		t.Fatal("reset with the construction seed should reproduce the random fill")
	}
}

func TestResetCoordinateSeed(t *testing.T) {
	size := core.Size{W: 5, H: 5}
	s, err := seed.FromCoordinates([]patterns.Offset{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}}, size)
	if err != nil {
		t.Fatalf("coordinates: %v", err)
	}
	u, err := New(size.W, size.H, s)
	if err != nil {
		t.Fatalf("new universe: %v", err)
	}
	start := u.Alive()
	u.Step()
	if err := u.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := u.Alive(); !slices.Equal(got, start) {
		t.Fatalf("reset alive=%v, expected %v", got, start)
	}
	if err := u.SetHeight(6); err != nil {
		t.Fatalf("set height: %v", err)
	}
	if err := u.Reset(0); !errors.Is(err, ErrStaleSeed) {
		t.Fatalf("expected ErrStaleSeed, got %v", err)
	}
}

func TestRegisteredFactory(t *testing.T) {
	sim, err := core.Build("life", map[string]string{"w": "12", "h": "10", "mode": "glider"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	u, ok := sim.(*Universe)
	if !ok {
		t.Fatalf("factory returned %T", sim)
	}
	if u.Size() != (core.Size{W: 12, H: 10}) || u.Population() != 5 {
		t.Fatalf("unexpected universe %v with population %d", u.Size(), u.Population())
	}

	if _, err := core.Build("life", map[string]string{"w": "4", "h": "4", "mode": "copper_head_spaceship"}); err == nil {
		t.Fatal("expected factory to surface the sizing error")
	}
}

func TestRegisteredFactoryRejectsBadDimensions(t *testing.T) {
	for _, cfg := range []map[string]string{
		{"w": "0"},
		{"w": "0", "h": "4"},
		{"h": "-3"},
	} {
		sim, err := core.Build("life", cfg)
		if !errors.Is(err, ErrEmptyGrid) {
			t.Fatalf("build %v: expected ErrEmptyGrid, got sim=%v err=%v", cfg, sim, err)
		}
	}
	for _, cfg := range []map[string]string{
		{"w": "wide"},
		{"h": ""},
		{"seed": "x"},
	} {
		if _, err := core.Build("life", cfg); err == nil {
			t.Fatalf("build %v: expected a parse error", cfg)
		}
	}
}

func TestFromMapDefaults(t *testing.T) {
	c, err := FromMap(nil)
	if err != nil {
		t.Fatalf("from nil map: %v", err)
	}
	if c != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", c)
	}
	want := Config{Width: 9, Height: 7, Mode: "glider", Seed: 42}
	got, err := FromMap(want.Map())
	if err != nil || got != want {
		t.Fatalf("round trip: got %+v, %v", got, err)
	}
}

func TestCellString(t *testing.T) {
	if Alive.String() != "alive" || Dead.String() != "dead" {
		t.Fatalf("unexpected names %q %q", Alive, Dead)
	}
}
