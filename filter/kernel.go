package filter

// ConvolutionKernel is a 3x3 grid of signed weights used as a weighted sum.
//
// Weights are indexed [dy+1][dx+1] for window offsets dx, dy in {-1, 0, 1}.
// The weighted sum of each channel is divided by Divisor (truncating toward
// zero) and clamped to [0, 255].
type ConvolutionKernel struct {
	Weights [3][3]int
	Divisor int
}

// NewConvolutionKernel creates a kernel normalized by the sum of its
// weights. A kernel whose weights sum to zero gets divisor 1.
func NewConvolutionKernel(weights [3][3]int) ConvolutionKernel {
	sum := 0
	for _, row := range weights {
		for _, w := range row {
			sum += w
		}
	}
	if sum == 0 {
		sum = 1
	}
	return ConvolutionKernel{Weights: weights, Divisor: sum}
}

// divisor returns Divisor, treating 0 as 1.
func (k ConvolutionKernel) divisor() int {
	if k.Divisor == 0 {
		return 1
	}
	return k.Divisor
}

// AverageKernel returns the box kernel: all ones, divisor 9.
func AverageKernel() ConvolutionKernel {
	return NewConvolutionKernel([3][3]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
}

// GaussianKernel returns the binomial kernel with divisor 16.
func GaussianKernel() ConvolutionKernel {
	return NewConvolutionKernel([3][3]int{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	})
}

// BorderKernel returns the single-direction difference kernel used by
// border detection. It is not normalized.
func BorderKernel() ConvolutionKernel {
	return ConvolutionKernel{
		Weights: [3][3]int{
			{0, 0, 0},
			{0, 0, -1},
			{0, 1, 0},
		},
		Divisor: 1,
	}
}

// StructuringKernel is a 3x3 grid of signed offsets for morphology.
//
// Dilation adds Offsets[dy+1][dx+1] to the gray level of each window cell,
// erosion subtracts it. Unlike a ConvolutionKernel it is never used as a
// weight.
type StructuringKernel struct {
	Offsets [3][3]int
}

// FlatStructuringKernel returns the all-zero structuring kernel, which
// makes dilation a plain 3x3 maximum and erosion a plain 3x3 minimum.
func FlatStructuringKernel() StructuringKernel {
	return StructuringKernel{}
}
