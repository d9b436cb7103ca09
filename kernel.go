package pixedit

import (
	"math"
	"sync"
)

// gaussianKernel returns a normalized 1D Gaussian kernel with sigma = radius,
// sized 2*ceil(3*sigma)+1. radius <= 0 yields the identity kernel.
func gaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}
	halfSize := int(math.Ceil(radius * 3))
	size := halfSize*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * radius * radius
	sum := 0.0
	vals := make([]float64, size)
	for i := range vals {
		x := float64(i - halfSize)
		vals[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += vals[i]
	}
	for i, v := range vals {
		kernel[i] = float32(v / sum)
	}
	return kernel
}

var kernelCache sync.Map

// cachedGaussianKernel quantizes radius to 0.01 px and memoizes the kernel.
func cachedGaussianKernel(radius float64) []float32 {
	key := int(math.Round(radius * 100))
	if k, ok := kernelCache.Load(key); ok {
		return k.([]float32)
	}
	k := gaussianKernel(float64(key) / 100)
	kernelCache.Store(key, k)
	return k
}

// Kernel3x3 is a row-major 3x3 convolution kernel.
type Kernel3x3 [9]float64

// SharpenKernel is the high-pass kernel used by the sharpen stage.
var SharpenKernel = Kernel3x3{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}
