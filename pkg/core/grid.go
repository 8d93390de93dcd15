package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Contains reports whether (row, col) addresses a cell inside the grid.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.H && col >= 0 && col < s.W
}

// Index returns the row-major linear index for (row, col). Callers check
// Contains first.
func (s Size) Index(row, col int) int { return row*s.W + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(row, col int) (int, int) {
	row = (row%s.H + s.H) % s.H
	col = (col%s.W + s.W) % s.W
	return row, col
}
