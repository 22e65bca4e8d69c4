// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the time-domain signal engines: causal truncated
// convolution with a finite kernel and circular cross-correlation.
//
//	filtered := dsp.Convolve(samples, []float64{0.25, 0.5, 0.25})
//	corr := dsp.CrossCorrelate(a, b)
//
// Both are direct O(n*m) and O(n²) computations. There is no FFT path.
// Inputs are never modified; the *To variants write into a caller buffer.
package dsp
