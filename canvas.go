package imgops

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is a fixed-size grid of RGB pixels.
//
// Pixels are stored row-major. A canvas never changes size after creation
// and every cell starts out White, which marks it as untouched background.
//
// Thread safety: concurrent reads are safe. Writes require that each
// goroutine owns a disjoint set of cells.
type Canvas struct {
	width  int
	height int
	pix    []Pixel
}

// NewCanvas creates a width x height canvas filled with White.
// It panics if either dimension is negative.
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("imgops: invalid canvas dimensions %dx%d", width, height))
	}
	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
	c.Fill(White)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Contains reports whether (x, y) addresses a cell of the canvas.
func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Pixel returns the pixel at (x, y).
// Out-of-range coordinates are a programming error and panic.
func (c *Canvas) Pixel(x, y int) Pixel {
	return c.pix[c.index(x, y)]
}

// SetPixel overwrites the pixel at (x, y).
// Out-of-range coordinates are a programming error and panic.
func (c *Canvas) SetPixel(x, y int, p Pixel) {
	c.pix[c.index(x, y)] = p
}

func (c *Canvas) index(x, y int) int {
	if !c.Contains(x, y) {
		panic(fmt.Sprintf("imgops: coordinates (%d, %d) out of bounds for %dx%d canvas", x, y, c.width, c.height))
	}
	return y*c.width + x
}

// Fill sets every pixel of the canvas to p.
func (c *Canvas) Fill(p Pixel) {
	for i := range c.pix {
		c.pix[i] = p
	}
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	pix := make([]Pixel, len(c.pix))
	copy(pix, c.pix)
	return &Canvas{width: c.width, height: c.height, pix: pix}
}

// Equal reports whether both canvases have the same size and pixels.
func (c *Canvas) Equal(o *Canvas) bool {
	if c.width != o.width || c.height != o.height {
		return false
	}
	for i := range c.pix {
		if c.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Row returns the pixels of row y. The slice aliases the canvas storage.
func (c *Canvas) Row(y int) []Pixel {
	if y < 0 || y >= c.height {
		panic(fmt.Sprintf("imgops: row %d out of bounds for height %d", y, c.height))
	}
	return c.pix[y*c.width : (y+1)*c.width]
}

// ToImage converts the canvas to an opaque image.NRGBA with identical
// coordinates.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := range c.height {
		off := y * img.Stride
		for x, p := range c.Row(y) {
			i := off + x*4
			img.Pix[i+0] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = 255
		}
	}
	return img
}

// FromImage creates a canvas from an image. The image's bounds are
// translated so that its minimum point becomes (0, 0); alpha is dropped.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy())

	// Fast path: already non-premultiplied 8-bit
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	origin := nrgba.Bounds().Min
	for y := range c.height {
		row := c.Row(y)
		for x := range row {
			i := nrgba.PixOffset(origin.X+x, origin.Y+y)
			row[x] = Pixel{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2]}
		}
	}
	return c
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	if !c.Contains(x, y) {
		return color.NRGBA{}
	}
	return c.Pixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
