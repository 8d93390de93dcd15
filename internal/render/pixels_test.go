package render

import (
	"image/color"
	"testing"
)

func TestFillBitsRGBA(t *testing.T) {
	on := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	off := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Cells 0, 3 and 65 alive across two words.
	words := []uint64{1 | 1<<3, 1 << 1}
	const n = 70
	buf := make([]byte, 4*n)
	fillBitsRGBA(buf, words, n, on, off)

	for i := 0; i < n; i++ {
		alive := i == 0 || i == 3 || i == 65
		want := off
		if alive {
			want = on
		}
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, expected %v", i, got, want)
		}
	}
}

func TestFillBitsRGBAShortWords(t *testing.T) {
	off := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	buf := make([]byte, 4*10)
	fillBitsRGBA(buf, nil, 10, color.White, off)
	for i := 0; i < 10; i++ {
		if buf[i*4] != 1 || buf[i*4+3] != 4 {
			t.Fatalf("pixel %d should be off when words are missing", i)
		}
	}
}
