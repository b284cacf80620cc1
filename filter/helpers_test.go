package filter

import "github.com/gogpu/imgops"

// Test helper functions shared across filter tests.

// createFilledCanvas creates a canvas filled with the given pixel.
func createFilledCanvas(w, h int, p imgops.Pixel) *imgops.Canvas {
	c := imgops.NewCanvas(w, h)
	c.Fill(p)
	return c
}

// createNoisyCanvas creates a canvas with deterministic pseudo-random pixels.
func createNoisyCanvas(w, h int) *imgops.Canvas {
	c := imgops.NewCanvas(w, h)
	state := uint32(2463534242)
	next := func() uint8 {
		// xorshift32
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		return uint8(state >> 24)
	}
	for y := range h {
		for x := range w {
			c.SetPixel(x, y, imgops.Pixel{R: next(), G: next(), B: next()})
		}
	}
	return c
}

// canvasFromPixels creates a 3x3 canvas whose pixels are given in scan order.
func canvasFromPixels(pixels [9]imgops.Pixel) *imgops.Canvas {
	c := imgops.NewCanvas(3, 3)
	for i, p := range pixels {
		c.SetPixel(i%3, i/3, p)
	}
	return c
}

// isBorder reports whether (x, y) lies on the outer ring of a w x h canvas.
func isBorder(x, y, w, h int) bool {
	return x == 0 || y == 0 || x == w-1 || y == h-1
}

// forEachInterior calls fn for every interior coordinate of c.
func forEachInterior(c *imgops.Canvas, fn func(x, y int)) {
	for y := 1; y < c.Height()-1; y++ {
		for x := 1; x < c.Width()-1; x++ {
			fn(x, y)
		}
	}
}
