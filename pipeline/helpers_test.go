package pipeline

import (
	"testing"

	"github.com/gogpu/imgops"
)

// createDistinctCanvas creates a canvas where every pixel differs.
func createDistinctCanvas(w, h int) *imgops.Canvas {
	c := imgops.NewCanvas(w, h)
	for y := range h {
		for x := range w {
			c.SetPixel(x, y, imgops.Pixel{R: uint8(x), G: uint8(y), B: uint8(x*7 + y*13)})
		}
	}
	return c
}

// mustParseSteps parses steps or fails the test.
func mustParseSteps(t *testing.T, specs ...string) []Step {
	t.Helper()
	steps, err := ParseSteps(specs)
	if err != nil {
		t.Fatalf("ParseSteps(%v) error = %v", specs, err)
	}
	return steps
}
