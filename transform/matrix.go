package transform

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a 2D affine map stored as three column vectors:
//
//	(x, y) -> (A*x + C*y + Tx, B*x + D*y + Ty)
//
// (A, B) is the image of the x axis, (C, D) the image of the y axis and
// (Tx, Ty) the translation. Only the forward direction is ever used.
type Matrix struct {
	A, B   float64
	C, D   float64
	Tx, Ty float64
}

// Identity returns the identity map.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// TranslateMatrix returns a map that shifts points by (dx, dy).
func TranslateMatrix(dx, dy float64) Matrix {
	return Matrix{A: 1, D: 1, Tx: dx, Ty: dy}
}

// ScaleMatrix returns a map that scales by (sx, sy) around the origin.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// RotateMatrix returns the rotation by deg degrees with every entry
// rounded to the nearest integer.
//
// Only multiples of 90 degrees therefore produce a true rotation; any other
// angle collapses to one of the 0/±1 combinations. Callers rely on this
// integer-exact behavior, so it must not be replaced with a float rotation.
func RotateMatrix(deg float64) Matrix {
	rad := deg * math.Pi / 180
	cos := math.Round(math.Cos(rad))
	sin := math.Round(math.Sin(rad))
	return Matrix{
		A: cos, B: sin,
		C: -sin, D: cos,
	}
}

// FlipMatrix returns the mirror map for dir. The result maps the image
// onto negative coordinates; see [Flipping] for the matching offset.
func FlipMatrix(dir Direction) Matrix {
	if dir == Horizontal {
		return Matrix{A: -1, D: 1}
	}
	return Matrix{A: 1, D: -1}
}

// Apply maps the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return x*m.A + y*m.C + m.Tx, x*m.B + y*m.D + m.Ty
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// String returns the matrix in the form [[A B] [C D] [Tx Ty]].
func (m Matrix) String() string {
	return fmt.Sprintf("[[%g %g] [%g %g] [%g %g]]", m.A, m.B, m.C, m.D, m.Tx, m.Ty)
}

// Direction selects the mirror axis of a flip.
type Direction int

const (
	// Vertical mirrors the y axis: rows swap top to bottom.
	Vertical Direction = iota
	// Horizontal mirrors the x axis: columns swap left to right.
	Horizontal
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "vertical"/"v" or "horizontal"/"h".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("transform: unknown flip direction %q", s)
	}
}
