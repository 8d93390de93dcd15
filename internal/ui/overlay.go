//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var gridColor = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}

// Overlay draws optional visuals on top of the base simulation.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance. Grid lines start visible when
// cells are large enough to leave room for them.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showGrid: scale >= 4}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles grid lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid || o.scale < 2 {
		return
	}
	size := o.sim.Size()
	if size.Empty() {
		return
	}
	w := float64(size.W * o.scale)
	h := float64(size.H * o.scale)
	for col := 0; col <= size.W; col++ {
		o.fillRect(screen, float64(col*o.scale), 0, 1, h)
	}
	for row := 0; row <= size.H; row++ {
		o.fillRect(screen, 0, float64(row*o.scale), w, 1)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(gridColor)
	screen.DrawImage(o.pixel, op)
}
