package filter

import "github.com/gogpu/imgops"

// Window is the 3x3 neighborhood of a source pixel in scan order: rows
// top to bottom, each row left to right. Index 4 is the center.
type Window [9]imgops.Pixel

// WindowFunc computes the output pixel for one window.
type WindowFunc func(w *Window) imgops.Pixel

// Sample fills w with the neighborhood centered at (x, y).
// (x, y) must be an interior coordinate: 1 <= x <= width-2 and
// 1 <= y <= height-2.
func Sample(src *imgops.Canvas, x, y int, w *Window) {
	k := 0
	for dy := -1; dy <= 1; dy++ {
		row := src.Row(y + dy)[x-1 : x+2]
		for _, p := range row {
			w[k] = p
			k++
		}
	}
}

// At returns the pixel at offset (dx, dy) from the center.
func (w *Window) At(dx, dy int) imgops.Pixel {
	return w[(dy+1)*3+dx+1]
}

// Grays returns the gray level of every cell in scan order.
func (w *Window) Grays() [9]uint8 {
	var g [9]uint8
	for i, p := range w {
		g[i] = p.Gray()
	}
	return g
}
