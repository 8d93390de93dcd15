package life

import (
	"fmt"

	"mad-life/pkg/seed"
)

var (
	// ErrEmptyGrid reports a zero width or height.
	ErrEmptyGrid = seed.ErrEmptyGrid
	// ErrOutOfBounds is matched by every *BoundsError.
	ErrOutOfBounds = seed.ErrOutOfBounds
)

// BoundsError describes a coordinate that falls outside the universe.
type BoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (row %d, col %d) outside %dx%d universe", e.Row, e.Col, e.Width, e.Height)
}

// Is lets errors.Is(err, ErrOutOfBounds) match.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }
