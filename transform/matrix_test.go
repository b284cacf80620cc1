package transform

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func TestIdentity(t *testing.T) {
	m := Identity()

	x, y := m.Apply(10, 20)
	if math.Abs(x-10) > epsilon || math.Abs(y-20) > epsilon {
		t.Errorf("Identity().Apply(10, 20) = (%f, %f), want (10, 20)", x, y)
	}
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestTranslateMatrix(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy     float64
		inX, inY   float64
		outX, outY float64
	}{
		{"positive", 5, 10, 0, 0, 5, 10},
		{"negative", -5, -10, 10, 20, 5, 10},
		{"mixed", 3, -4, 2, 8, 5, 4},
		{"zero", 0, 0, 10, 20, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := TranslateMatrix(tt.dx, tt.dy).Apply(tt.inX, tt.inY)
			if math.Abs(x-tt.outX) > epsilon || math.Abs(y-tt.outY) > epsilon {
				t.Errorf("TranslateMatrix(%g, %g).Apply(%g, %g) = (%g, %g), want (%g, %g)",
					tt.dx, tt.dy, tt.inX, tt.inY, x, y, tt.outX, tt.outY)
			}
		})
	}
}

func TestScaleMatrix(t *testing.T) {
	x, y := ScaleMatrix(3, 0.5).Apply(4, 10)
	if math.Abs(x-12) > epsilon || math.Abs(y-5) > epsilon {
		t.Errorf("ScaleMatrix(3, 0.5).Apply(4, 10) = (%g, %g), want (12, 5)", x, y)
	}
}

func TestRotateMatrixRounding(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want Matrix
	}{
		{"0deg", 0, Matrix{A: 1, B: 0, C: 0, D: 1}},
		{"90deg", 90, Matrix{A: 0, B: 1, C: -1, D: 0}},
		{"-90deg", -90, Matrix{A: 0, B: -1, C: 1, D: 0}},
		{"180deg", 180, Matrix{A: -1, B: 0, C: 0, D: -1}},
		{"270deg", 270, Matrix{A: 0, B: -1, C: 1, D: 0}},
		// Non-right angles collapse to rounded 0/±1 entries.
		{"45deg", 45, Matrix{A: 1, B: 1, C: -1, D: 1}},
		{"10deg", 10, Matrix{A: 1, B: 0, C: 0, D: 1}},
		{"135deg", 135, Matrix{A: -1, B: 1, C: -1, D: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateMatrix(tt.deg)
			// == treats -0 and 0 as equal
			if got != tt.want {
				t.Errorf("RotateMatrix(%g) = %v, want %v", tt.deg, got, tt.want)
			}
		})
	}
}

func TestFlipMatrix(t *testing.T) {
	x, y := FlipMatrix(Vertical).Apply(3, 4)
	if x != 3 || y != -4 {
		t.Errorf("FlipMatrix(Vertical).Apply(3, 4) = (%g, %g), want (3, -4)", x, y)
	}

	x, y = FlipMatrix(Horizontal).Apply(3, 4)
	if x != -3 || y != 4 {
		t.Errorf("FlipMatrix(Horizontal).Apply(3, 4) = (%g, %g), want (-3, 4)", x, y)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"vertical", Vertical, false},
		{"V", Vertical, false},
		{"horizontal", Horizontal, false},
		{"h", Horizontal, false},
		{"diagonal", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if Vertical.String() != "vertical" || Horizontal.String() != "horizontal" {
		t.Errorf("unexpected names %q, %q", Vertical, Horizontal)
	}
	if Direction(7).String() != "Direction(7)" {
		t.Errorf("Direction(7).String() = %q", Direction(7).String())
	}
}
