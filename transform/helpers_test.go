package transform

import "github.com/gogpu/imgops"

// Test helper functions shared across transform tests.

// distinctPixel returns a pixel unique to (x, y) for small coordinates.
func distinctPixel(x, y int) imgops.Pixel {
	return imgops.Pixel{R: uint8(10 + x), G: uint8(100 + y), B: uint8(x*16 + y)}
}

// createDistinctCanvas creates a canvas where every pixel is distinctPixel(x, y).
func createDistinctCanvas(w, h int) *imgops.Canvas {
	c := imgops.NewCanvas(w, h)
	for y := range h {
		for x := range w {
			c.SetPixel(x, y, distinctPixel(x, y))
		}
	}
	return c
}

// countWhite returns the number of white pixels in c.
func countWhite(c *imgops.Canvas) int {
	n := 0
	for y := range c.Height() {
		for _, p := range c.Row(y) {
			if p == imgops.White {
				n++
			}
		}
	}
	return n
}
