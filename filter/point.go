package filter

import "github.com/gogpu/imgops"

// ChannelMap is a lookup table applied independently to each channel.
type ChannelMap [256]uint8

// NewChannelMap builds a table from fn, clamping results to [0, 255].
func NewChannelMap(fn func(c int) int) ChannelMap {
	var m ChannelMap
	for c := range m {
		m[c] = imgops.Clamp255(fn(c))
	}
	return m
}

// ContrastMap multiplies every channel by factor.
func ContrastMap(factor int) ChannelMap {
	return NewChannelMap(func(c int) int { return factor * c })
}

// BrightnessMap adds delta to every channel.
func BrightnessMap(delta int) ChannelMap {
	return NewChannelMap(func(c int) int { return c + delta })
}

// NegativeMap inverts every channel.
func NegativeMap() ChannelMap {
	return NewChannelMap(func(c int) int { return 255 - c })
}

// Map applies the table to p.
func (m *ChannelMap) Map(p imgops.Pixel) imgops.Pixel {
	return imgops.Pixel{R: m[p.R], G: m[p.G], B: m[p.B]}
}

// MapChannels applies m to every pixel of src, borders included.
// src and dst may be the same canvas.
func (e *Engine) MapChannels(src, dst *imgops.Canvas, m ChannelMap) {
	e.applyPixels("channels", src, dst, m.Map)
}

// Grayscale replaces every pixel with its gray level.
// src and dst may be the same canvas.
func (e *Engine) Grayscale(src, dst *imgops.Canvas) {
	e.applyPixels("grayscale", src, dst, func(p imgops.Pixel) imgops.Pixel {
		return imgops.GrayPixel(p.Gray())
	})
}

// Contrast multiplies every channel by factor, clamping to [0, 255].
func (e *Engine) Contrast(src, dst *imgops.Canvas, factor int) {
	m := ContrastMap(factor)
	e.applyPixels("contrast", src, dst, m.Map)
}

// Brightness adds delta to every channel, clamping to [0, 255].
func (e *Engine) Brightness(src, dst *imgops.Canvas, delta int) {
	m := BrightnessMap(delta)
	e.applyPixels("brightness", src, dst, m.Map)
}

// Negative inverts every channel.
func (e *Engine) Negative(src, dst *imgops.Canvas) {
	m := NegativeMap()
	e.applyPixels("negative", src, dst, m.Map)
}

// Threshold binarizes every pixel of src, borders included: white when
// its gray level exceeds cutoff, black otherwise.
// src and dst may be the same canvas.
func (e *Engine) Threshold(src, dst *imgops.Canvas, cutoff uint8) {
	e.applyPixels("threshold", src, dst, func(p imgops.Pixel) imgops.Pixel {
		if p.Gray() > cutoff {
			return imgops.White
		}
		return imgops.Black
	})
}

// Grayscale replaces every pixel with its gray level. See [Engine.Grayscale].
func Grayscale(src, dst *imgops.Canvas) {
	sequential.Grayscale(src, dst)
}

// Contrast scales every channel. See [Engine.Contrast].
func Contrast(src, dst *imgops.Canvas, factor int) {
	sequential.Contrast(src, dst, factor)
}

// Brightness offsets every channel. See [Engine.Brightness].
func Brightness(src, dst *imgops.Canvas, delta int) {
	sequential.Brightness(src, dst, delta)
}

// Negative inverts every channel. See [Engine.Negative].
func Negative(src, dst *imgops.Canvas) {
	sequential.Negative(src, dst)
}

// Threshold binarizes every pixel. See [Engine.Threshold].
func Threshold(src, dst *imgops.Canvas, cutoff uint8) {
	sequential.Threshold(src, dst, cutoff)
}
