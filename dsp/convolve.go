// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Convolve filters samples with kernel and returns a new slice of
// len(samples):
//
//	out[i] = Σ samples[i-j] * kernel[j], for j in [0, len(kernel)) with i-j >= 0
//
// Samples before index 0 count as zero and the tail past len(samples)-1 is
// dropped, so the result is causal and truncated rather than the full
// len(samples)+len(kernel)-1 convolution. An empty kernel yields zeros.
func Convolve(samples, kernel []float64) []float64 {
	out := make([]float64, len(samples))
	convolve(out, samples, kernel)
	return out
}

// ConvolveTo is Convolve writing into dst, which must have len(samples)
// and must not share memory with samples.
func ConvolveTo(dst, samples, kernel []float64) error {
	if len(dst) != len(samples) {
		return fmt.Errorf("convolve into %d of %d: %w", len(dst), len(samples), ErrLengthMismatch)
	}

	convolve(dst, samples, kernel)
	return nil
}

// simdThreshold is the kernel length from which the block path is used.
const simdThreshold = 4

func convolve(dst, samples, kernel []float64) {
	clear(dst)

	if len(kernel) >= simdThreshold {
		convolveBlocks(dst, samples, kernel)
	} else {
		convolveScalar(dst, samples, kernel)
	}
}

// convolveScalar scatters samples[i]*kernel into dst[i:], dropping terms
// past the end of dst.
func convolveScalar(dst, samples, kernel []float64) {
	n := len(dst)
	for i, s := range samples {
		for j, k := range kernel {
			if i+j >= n {
				break
			}
			dst[i+j] += s * k
		}
	}
}

// convolveBlocks is convolveScalar with the inner loop done by vecmath on
// the part of the scaled kernel that still fits in dst.
func convolveBlocks(dst, samples, kernel []float64) {
	n := len(dst)
	temp := make([]float64, len(kernel))

	for i, s := range samples {
		end := min(i+len(kernel), n)
		span := end - i

		vecmath.ScaleBlock(temp[:span], kernel[:span], s)
		vecmath.AddBlockInPlace(dst[i:end], temp[:span])
	}
}
