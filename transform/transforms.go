package transform

import (
	"image"

	"github.com/gogpu/imgops"
)

// Transform pairs an affine map with the destination offset added before
// flooring. Every named transform in this package is a Transform applied
// through [Scatter].
type Transform struct {
	Matrix Matrix
	Offset image.Point
}

// Translation returns the transform that shifts an image by (dx, dy).
func Translation(dx, dy int) Transform {
	return Transform{Matrix: TranslateMatrix(float64(dx), float64(dy))}
}

// Scaling returns the transform that scales an image by (sx, sy) around
// the origin. Factors above 1 leave holes, factors below 1 collide.
func Scaling(sx, sy float64) Transform {
	return Transform{Matrix: ScaleMatrix(sx, sy)}
}

// Rotation returns the transform that rotates a width x height image by
// deg degrees using [RotateMatrix]. The offset max(width, height) on both
// axes keeps every rotated coordinate non-negative.
func Rotation(deg float64, width, height int) Transform {
	m := max(width, height)
	return Transform{
		Matrix: RotateMatrix(deg),
		Offset: image.Pt(m, m),
	}
}

// Flipping returns the transform that mirrors a width x height image.
// Vertical uses offset (0, height), Horizontal uses offset (width, 0).
//
// The mirrored image occupies [1, height] (or [1, width]) on the flipped
// axis, so a destination the size of the source drops the first source
// row (or column) and leaves row 0 (or column 0) untouched.
func Flipping(dir Direction, width, height int) Transform {
	t := Transform{Matrix: FlipMatrix(dir)}
	if dir == Horizontal {
		t.Offset = image.Pt(width, 0)
	} else {
		t.Offset = image.Pt(0, height)
	}
	return t
}

// Apply scatters src into dst.
func (t Transform) Apply(src, dst *imgops.Canvas, opts ...Option) Stats {
	return Scatter(t.Matrix, src, dst, t.Offset, opts...)
}

// Extent returns the destination rectangle a width x height source
// occupies under t.
func (t Transform) Extent(width, height int) image.Rectangle {
	return Extent(t.Matrix, t.Offset, width, height)
}

// Translate shifts src by (dx, dy) into dst.
func Translate(src, dst *imgops.Canvas, dx, dy int, opts ...Option) Stats {
	return Translation(dx, dy).Apply(src, dst, opts...)
}

// Scale scales src by (sx, sy) into dst.
func Scale(src, dst *imgops.Canvas, sx, sy float64, opts ...Option) Stats {
	return Scaling(sx, sy).Apply(src, dst, opts...)
}

// Rotate rotates src by deg degrees into dst. See [RotateMatrix] for the
// integer rounding applied to the rotation entries.
func Rotate(src, dst *imgops.Canvas, deg float64, opts ...Option) Stats {
	return Rotation(deg, src.Width(), src.Height()).Apply(src, dst, opts...)
}

// Flip mirrors src along dir into dst.
func Flip(src, dst *imgops.Canvas, dir Direction, opts ...Option) Stats {
	return Flipping(dir, src.Width(), src.Height()).Apply(src, dst, opts...)
}
