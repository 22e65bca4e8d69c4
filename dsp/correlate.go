// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Option configures CrossCorrelate.
type Option func(*options)

type options struct {
	progress func(done, total int)
}

// WithProgress registers fn to be called after every lag with the number
// of lags computed so far and the total. fn runs on the calling goroutine.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// CommonLength returns min(len(a), len(b)), the length of the correlation.
func CommonLength(a, b []float64) int {
	return min(len(a), len(b))
}

// CrossCorrelate computes the circular cross-correlation of a and b over
// their common prefix of size = min(len(a), len(b)):
//
//	r[i] = Σ_{j=0}^{size-1} a[j] * b[(j+i) mod size]
//
// Samples past size are ignored, never padded. Either input empty gives an
// empty result.
func CrossCorrelate(a, b []float64, opts ...Option) []float64 {
	out := make([]float64, CommonLength(a, b))
	crossCorrelate(out, a, b, opts)
	return out
}

// CrossCorrelateTo is CrossCorrelate writing into dst, which must have
// length CommonLength(a, b).
func CrossCorrelateTo(dst, a, b []float64, opts ...Option) error {
	if len(dst) != CommonLength(a, b) {
		return fmt.Errorf("correlate into %d of %d: %w", len(dst), CommonLength(a, b), ErrLengthMismatch)
	}

	crossCorrelate(dst, a, b, opts)
	return nil
}

func crossCorrelate(dst, a, b []float64, opts []Option) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	size := len(dst)
	if size == 0 {
		return
	}

	a = a[:size]
	b = b[:size]
	prod := make([]float64, size)

	for lag := range size {
		// b rotated left by lag is b[lag:] followed by b[:lag].
		head := size - lag
		vecmath.MulBlock(prod[:head], a[:head], b[lag:])
		if lag > 0 {
			vecmath.MulBlock(prod[head:], a[head:], b[:lag])
		}

		// Summed in index order so the result matches the scalar definition.
		acc := 0.0
		for _, p := range prod {
			acc += p
		}
		dst[lag] = acc

		if o.progress != nil {
			o.progress(lag+1, size)
		}
	}
}
