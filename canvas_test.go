package imgops

import (
	"image"
	"image/color"
	"testing"
)

func TestNewCanvasWhite(t *testing.T) {
	c := NewCanvas(4, 3)

	if c.Width() != 4 || c.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", c.Width(), c.Height())
	}
	for y := range 3 {
		for x := range 4 {
			if got := c.Pixel(x, y); got != White {
				t.Errorf("Pixel(%d, %d) = %v, want White", x, y, got)
			}
		}
	}
}

func TestNewCanvasZeroSize(t *testing.T) {
	c := NewCanvas(0, 0)
	if c.Width() != 0 || c.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", c.Width(), c.Height())
	}
	if img := c.ToImage(); !img.Bounds().Empty() {
		t.Errorf("ToImage().Bounds() = %v, want empty", img.Bounds())
	}
}

func TestNewCanvasNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewCanvas(-1, 5) did not panic")
		}
	}()
	NewCanvas(-1, 5)
}

func TestSetPixelOverwrites(t *testing.T) {
	c := NewCanvas(3, 3)
	c.SetPixel(1, 2, Pixel{R: 10, G: 20, B: 30})
	c.SetPixel(1, 2, Pixel{R: 1, G: 2, B: 3})

	if got := c.Pixel(1, 2); got != (Pixel{R: 1, G: 2, B: 3}) {
		t.Errorf("Pixel(1, 2) = %v, want {1 2 3}", got)
	}
	if got := c.Pixel(2, 1); got != White {
		t.Errorf("Pixel(2, 1) = %v, want White (untouched)", got)
	}
}

func TestPixelOutOfBoundsPanics(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x == width", 3, 0},
		{"y == height", 0, 2},
		{"wraps into next row", 3, 1},
	}

	c := NewCanvas(3, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Pixel(%d, %d) did not panic", tt.x, tt.y)
				}
			}()
			c.Pixel(tt.x, tt.y)
		})
	}
}

func TestCloneIndependent(t *testing.T) {
	c := NewCanvas(2, 2)
	clone := c.Clone()
	clone.SetPixel(0, 0, Black)

	if c.Pixel(0, 0) != White {
		t.Error("modifying clone changed the original")
	}
	if c.Equal(clone) {
		t.Error("Equal() = true after modification")
	}
}

func TestImageRoundTrip(t *testing.T) {
	c := NewCanvas(5, 4)
	for y := range 4 {
		for x := range 5 {
			c.SetPixel(x, y, Pixel{R: uint8(x * 40), G: uint8(y * 60), B: uint8(x + y)})
		}
	}

	back := FromImage(c.ToImage())
	if !c.Equal(back) {
		t.Error("FromImage(ToImage()) is not lossless")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(10, 20, 13, 22))
	rgba.Set(10, 20, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	rgba.Set(12, 21, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	c := FromImage(rgba)

	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", c.Width(), c.Height())
	}
	if got := c.Pixel(0, 0); got != (Pixel{R: 200, G: 100, B: 50}) {
		t.Errorf("Pixel(0, 0) = %v, want {200 100 50}", got)
	}
	if got := c.Pixel(2, 1); got != (Pixel{R: 1, G: 2, B: 3}) {
		t.Errorf("Pixel(2, 1) = %v, want {1 2 3}", got)
	}
}

func TestFromImageGray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 128})

	c := FromImage(gray)
	if got := c.Pixel(1, 1); got != GrayPixel(128) {
		t.Errorf("Pixel(1, 1) = %v, want gray 128", got)
	}
}

func TestCanvasImplementsImage(t *testing.T) {
	var img image.Image = NewCanvas(2, 2)

	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("At(1, 1) = (%d, %d, %d, %d), want opaque white", r, g, b, a)
	}
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0 {
		t.Errorf("At outside bounds alpha = %d, want 0", a)
	}
}

func TestPixelGray(t *testing.T) {
	tests := []struct {
		p    Pixel
		want uint8
	}{
		{Black, 0},
		{White, 255},
		{Pixel{R: 1, G: 1, B: 2}, 1},
		{Pixel{R: 255, G: 255, B: 0}, 170},
		{Pixel{R: 10, G: 20, B: 30}, 20},
	}

	for _, tt := range tests {
		if got := tt.p.Gray(); got != tt.want {
			t.Errorf("%v.Gray() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct{ in, want int }{
		{-50, 0}, {0, 0}, {128, 128}, {255, 255}, {1000, 255},
	}
	for _, tt := range tests {
		if got := Clamp255(tt.in); int(got) != tt.want {
			t.Errorf("Clamp255(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPixelFromColor(t *testing.T) {
	got := PixelFromColor(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if got != (Pixel{R: 10, G: 20, B: 30}) {
		t.Errorf("PixelFromColor() = %v, want {10 20 30}", got)
	}
}
