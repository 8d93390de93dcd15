package render

import "image/color"

// fillBitsRGBA converts n bit-packed cells into RGBA pixels in buf. Cell i is
// bit i%64 of words[i/64].
func fillBitsRGBA(buf []byte, words []uint64, n int, on, off color.Color) {
	onPx := rgba(on)
	offPx := rgba(off)
	for i := 0; i < n; i++ {
		px := offPx
		if w := i >> 6; w < len(words) && words[w]&(1<<(uint(i)&63)) != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
