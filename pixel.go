package imgops

import "image/color"

// Pixel is a single RGB sample with 8 bits per channel.
type Pixel struct {
	R, G, B uint8
}

// Common pixels.
var (
	White = Pixel{R: 255, G: 255, B: 255}
	Black = Pixel{}
)

// Gray returns the gray level of p, the truncated mean of its three channels.
func (p Pixel) Gray() uint8 {
	return uint8((uint16(p.R) + uint16(p.G) + uint16(p.B)) / 3)
}

// GrayPixel returns a pixel with all three channels set to level.
func GrayPixel(level uint8) Pixel {
	return Pixel{R: level, G: level, B: level}
}

// Color implements conversion to color.Color as an opaque NRGBA value.
func (p Pixel) Color() color.Color {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// PixelFromColor converts any color.Color to a Pixel, dropping alpha.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B}
}

// Clamp255 limits v to the [0, 255] range of a channel.
func Clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
