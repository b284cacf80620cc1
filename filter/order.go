package filter

import (
	"slices"

	"github.com/gogpu/imgops"
)

// levelTable counts the gray levels seen in one window and remembers the
// first pixel seen at each level. It lives on the stack for a single
// window evaluation.
type levelTable struct {
	n      int
	levels [9]uint8
	counts [9]int
	first  [9]imgops.Pixel
}

// add records p at level and returns the updated count for level.
func (t *levelTable) add(level uint8, p imgops.Pixel) int {
	for i := range t.n {
		if t.levels[i] == level {
			t.counts[i]++
			return t.counts[i]
		}
	}
	t.levels[t.n] = level
	t.counts[t.n] = 1
	t.first[t.n] = p
	t.n++
	return 1
}

// pixel returns the first pixel recorded at level.
func (t *levelTable) pixel(level uint8) imgops.Pixel {
	for i := range t.n {
		if t.levels[i] == level {
			return t.first[i]
		}
	}
	return imgops.GrayPixel(level)
}

// modeOf returns the first-seen pixel of the most frequent gray level.
// A level only takes the lead by strictly exceeding the current maximum,
// so among tied levels the one that reached the count first wins.
func modeOf(w *Window) imgops.Pixel {
	var t levelTable
	var best uint8
	bestCount := 0
	for _, p := range w {
		level := p.Gray()
		if c := t.add(level, p); c > bestCount {
			bestCount = c
			best = level
		}
	}
	return t.pixel(best)
}

// medianOf returns the first-seen pixel of the median gray level.
func medianOf(w *Window) imgops.Pixel {
	var t levelTable
	grays := w.Grays()
	for i, p := range w {
		t.add(grays[i], p)
	}
	slices.Sort(grays[:])
	return t.pixel(grays[4])
}

// Mode replaces every interior pixel with the most frequent gray level of
// its window, reported as the first original pixel seen at that level.
func (e *Engine) Mode(src, dst *imgops.Canvas) {
	e.applyWindows("mode", src, dst, modeOf)
}

// Median replaces every interior pixel with the median gray level of its
// window (the 5th of the 9 sorted levels), reported as the first original
// pixel seen at that level.
func (e *Engine) Median(src, dst *imgops.Canvas) {
	e.applyWindows("median", src, dst, medianOf)
}

// Mode applies the mode filter. See [Engine.Mode].
func Mode(src, dst *imgops.Canvas) {
	sequential.Mode(src, dst)
}

// Median applies the median filter. See [Engine.Median].
func Median(src, dst *imgops.Canvas) {
	sequential.Median(src, dst)
}
