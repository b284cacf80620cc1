// Package parallel provides row-band parallelism for the imgops filters.
//
// Neighborhood filters write every output cell from exactly one window, so
// the rows of a canvas can be split into contiguous bands and processed by
// independent goroutines. Bands never overlap, which keeps writes disjoint
// while reads of the shared source canvas stay concurrent.
package parallel

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides [lo, hi) into at most n contiguous bands of nearly
// equal height. Earlier bands get the extra row when the range does not
// divide evenly. It returns nil for an empty range.
func SplitRows(lo, hi, n int) []Band {
	total := hi - lo
	if total <= 0 {
		return nil
	}
	n = max(1, min(n, total))

	bands := make([]Band, 0, n)
	size, extra := total/n, total%n
	y := lo
	for i := range n {
		h := size
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}
