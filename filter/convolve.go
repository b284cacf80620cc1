package filter

import (
	"math"

	"github.com/gogpu/imgops"
)

// weightedSums returns the per-channel weighted sums of w under weights.
func weightedSums(w *Window, weights *[3][3]int) (r, g, b int) {
	for i, p := range w {
		k := weights[i/3][i%3]
		if k == 0 {
			continue
		}
		r += int(p.R) * k
		g += int(p.G) * k
		b += int(p.B) * k
	}
	return r, g, b
}

// Convolve writes the normalized weighted sum of every interior window of
// src to dst.
func (e *Engine) Convolve(src, dst *imgops.Canvas, k ConvolutionKernel) {
	e.convolve("convolve", src, dst, k)
}

func (e *Engine) convolve(op string, src, dst *imgops.Canvas, k ConvolutionKernel) {
	div := k.divisor()
	e.applyWindows(op, src, dst, func(w *Window) imgops.Pixel {
		r, g, b := weightedSums(w, &k.Weights)
		return imgops.Pixel{
			R: imgops.Clamp255(r / div),
			G: imgops.Clamp255(g / div),
			B: imgops.Clamp255(b / div),
		}
	})
}

// Average applies the 3x3 box blur.
func (e *Engine) Average(src, dst *imgops.Canvas) {
	e.convolve("average", src, dst, AverageKernel())
}

// Gaussian applies the 3x3 binomial blur.
func (e *Engine) Gaussian(src, dst *imgops.Canvas) {
	e.convolve("gaussian", src, dst, GaussianKernel())
}

// BorderDetection marks edges of src in dst.
//
// For each channel the directional gradient g of [BorderKernel] is turned
// into the magnitude sqrt(g*g + g*g), and the channel becomes 255 when the
// magnitude exceeds threshold, 0 otherwise. Both terms of the magnitude are
// the same single-direction gradient; the filter does not combine two axes.
func (e *Engine) BorderDetection(src, dst *imgops.Canvas, threshold float64) {
	k := BorderKernel()
	e.applyWindows("border", src, dst, func(w *Window) imgops.Pixel {
		r, g, b := weightedSums(w, &k.Weights)
		return imgops.Pixel{
			R: binarize(r, threshold),
			G: binarize(g, threshold),
			B: binarize(b, threshold),
		}
	})
}

func binarize(g int, threshold float64) uint8 {
	gf := float64(g)
	if math.Sqrt(gf*gf+gf*gf) > threshold {
		return 255
	}
	return 0
}

// Convolve applies k using a sequential engine. See [Engine.Convolve].
func Convolve(src, dst *imgops.Canvas, k ConvolutionKernel) {
	sequential.Convolve(src, dst, k)
}

// Average applies the 3x3 box blur. See [Engine.Average].
func Average(src, dst *imgops.Canvas) {
	sequential.Average(src, dst)
}

// Gaussian applies the 3x3 binomial blur. See [Engine.Gaussian].
func Gaussian(src, dst *imgops.Canvas) {
	sequential.Gaussian(src, dst)
}

// BorderDetection marks edges. See [Engine.BorderDetection].
func BorderDetection(src, dst *imgops.Canvas, threshold float64) {
	sequential.BorderDetection(src, dst, threshold)
}
