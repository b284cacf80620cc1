package transform

import (
	"image"
	"math"

	"github.com/gogpu/imgops"
)

// Stats describes how a scatter distributed the source pixels.
//
// Forward mapping is not a bijection: enlarging leaves Holes (destination
// cells no source pixel reached) and shrinking produces Collisions (source
// pixels landing on a cell already targeted by this scatter).
type Stats struct {
	// Written is the number of destination writes performed.
	Written int
	// Dropped is the number of source pixels that fell outside the destination.
	Dropped int
	// Collisions is the number of source pixels that landed on a cell
	// already targeted earlier in the same scatter.
	Collisions int
	// Holes is the number of destination cells no source pixel reached.
	// They keep their prior value.
	Holes int
}

// Scatter forward-maps every pixel of src through m into dst.
//
// For each source coordinate (i, j) the destination is
// floor(m.Apply(i, j) + offset). Pixels that land outside dst are dropped
// without error. Source coordinates are visited column by column (i in the
// outer loop, j in the inner loop); with the default LastWins policy the
// last pixel visited wins a collision.
//
// Scatter runs sequentially so that collision resolution is deterministic.
func Scatter(m Matrix, src, dst *imgops.Canvas, offset image.Point, opts ...Option) Stats {
	o := applyOptions(opts)

	dw, dh := dst.Width(), dst.Height()
	fw, fh := float64(dw), float64(dh)
	ox, oy := float64(offset.X), float64(offset.Y)

	// targeted marks destination cells reached during this scatter.
	targeted := make([]bool, dw*dh)
	reached := 0

	var st Stats
	for i := range src.Width() {
		for j := range src.Height() {
			fx, fy := m.Apply(float64(i), float64(j))
			fx += ox
			fy += oy

			// Written so that NaN coordinates are dropped too.
			if !(fx >= 0 && fx < fw && fy >= 0 && fy < fh) {
				st.Dropped++
				continue
			}

			// Non-negative, so truncation equals floor.
			x0, y0 := int(fx), int(fy)
			k := y0*dw + x0
			if targeted[k] {
				st.Collisions++
				if o.policy == FirstWins {
					continue
				}
			} else {
				targeted[k] = true
				reached++
			}

			dst.SetPixel(x0, y0, src.Pixel(i, j))
			st.Written++
		}
	}
	st.Holes = dw*dh - reached

	imgops.Logger().Debug("scatter complete",
		"matrix", m.String(),
		"offset", offset,
		"policy", o.policy.String(),
		"written", st.Written,
		"dropped", st.Dropped,
		"collisions", st.Collisions,
		"holes", st.Holes)

	return st
}

// Extent returns the bounding rectangle of the destination cells that a
// width x height source maps to under m and offset, ignoring destination
// bounds. It returns an empty rectangle for an empty source or when a
// mapped corner is NaN. Corners beyond the int32 range are saturated.
func Extent(m Matrix, offset image.Point, width, height int) image.Rectangle {
	if width <= 0 || height <= 0 {
		return image.Rectangle{}
	}

	corners := [4][2]float64{
		{0, 0},
		{float64(width - 1), 0},
		{0, float64(height - 1)},
		{float64(width - 1), float64(height - 1)},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := m.Apply(c[0], c[1])
		x = math.Floor(x + float64(offset.X))
		y = math.Floor(y + float64(offset.Y))
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	if math.IsNaN(minX) || math.IsNaN(minY) || math.IsNaN(maxX) || math.IsNaN(maxY) {
		return image.Rectangle{}
	}
	return image.Rect(saturate(minX), saturate(minY), saturate(maxX)+1, saturate(maxY)+1)
}

// saturate converts a floored coordinate to int, clamped to the int32 range.
func saturate(v float64) int {
	const lo, hi = math.MinInt32, math.MaxInt32 - 1
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return int(v)
}
