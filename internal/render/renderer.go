//go:build ebiten

package render

import (
	"image/color"

	"mad-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on bit-packed cell data.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{}
	gp.resize(size)
	return gp
}

func (gp *GridPainter) resize(size core.Size) {
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.size = size
	gp.buf = make([]byte, 4*size.Area())
	gp.img = ebiten.NewImage(size.W, size.H)
}

// Blit uploads the provided cells into the painter image and draws it. The
// image is reallocated when the grid was resized.
func (gp *GridPainter) Blit(dst *ebiten.Image, words []uint64, size core.Size, on, off color.Color, scale int) {
	if size.Empty() {
		return
	}
	if size != gp.size {
		gp.resize(size)
	}
	fillBitsRGBA(gp.buf, words, size.Area(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
