package filter

import "github.com/gogpu/imgops"

// Dilate writes the gray dilation of every interior window:
// max over the window of clamp(gray + offset).
func (e *Engine) Dilate(src, dst *imgops.Canvas, k StructuringKernel) {
	e.applyWindows("dilate", src, dst, func(w *Window) imgops.Pixel {
		level := 0
		for i, p := range w {
			v := int(imgops.Clamp255(int(p.Gray()) + k.Offsets[i/3][i%3]))
			level = max(level, v)
		}
		return imgops.GrayPixel(uint8(level))
	})
}

// Erode writes the gray erosion of every interior window:
// min over the window of clamp(gray - offset).
func (e *Engine) Erode(src, dst *imgops.Canvas, k StructuringKernel) {
	e.applyWindows("erode", src, dst, func(w *Window) imgops.Pixel {
		level := 255
		for i, p := range w {
			v := int(imgops.Clamp255(int(p.Gray()) - k.Offsets[i/3][i%3]))
			level = min(level, v)
		}
		return imgops.GrayPixel(uint8(level))
	})
}

// Dilate applies gray dilation. See [Engine.Dilate].
func Dilate(src, dst *imgops.Canvas, k StructuringKernel) {
	sequential.Dilate(src, dst, k)
}

// Erode applies gray erosion. See [Engine.Erode].
func Erode(src, dst *imgops.Canvas, k StructuringKernel) {
	sequential.Erode(src, dst, k)
}
