// Package filter implements raster post-processing effects for
// transparency-layer compositing, currently the drop shadow.
//
// All functions operate on raw premultiplied RGBA byte buffers so the
// package stays independent of the public pixmap type.
package filter

import (
	"math"

	"github.com/gogpu/plotmark/cache"
)

// kernelCache memoizes Gaussian kernels by blur radius. Symbol rendering
// tends to reuse a handful of shadow radii across an entire plot, so the
// kernel for each radius is computed once.
var kernelCache = cache.New[uint64, []float32](32)

// gaussianKernel returns a normalized 1D Gaussian kernel for the given
// blur radius.
func gaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}
	return kernelCache.GetOrCreate(math.Float64bits(radius), func() []float32 {
		return buildGaussianKernel(radius)
	})
}

func buildGaussianKernel(radius float64) []float32 {
	half := int(math.Ceil(radius))
	size := 2*half + 1

	sigma := radius / 2
	if sigma < 0.5 {
		sigma = 0.5
	}
	twoSigmaSq := 2 * sigma * sigma

	kernel := make([]float32, size)
	var sum float64
	for i := 0; i < size; i++ {
		d := float64(i - half)
		v := math.Exp(-d * d / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	for i := range kernel {
		kernel[i] = float32(float64(kernel[i]) / sum)
	}
	return kernel
}

// blurAlpha applies a separable Gaussian blur to a single-channel
// coverage buffer.
func blurAlpha(src []float32, width, height int, radius float64) []float32 {
	kernel := gaussianKernel(radius)
	half := len(kernel) / 2

	temp := make([]float32, width*height)
	dst := make([]float32, width*height)

	// Horizontal pass
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var sum float32
			for k, kv := range kernel {
				kx := x + k - half
				// Edge extension
				if kx < 0 {
					kx = 0
				} else if kx >= width {
					kx = width - 1
				}
				sum += src[row+kx] * kv
			}
			temp[row+x] = sum
		}
	}

	// Vertical pass
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k, kv := range kernel {
				ky := y + k - half
				if ky < 0 {
					ky = 0
				} else if ky >= height {
					ky = height - 1
				}
				sum += temp[ky*width+x] * kv
			}
			dst[y*width+x] = sum
		}
	}

	return dst
}
