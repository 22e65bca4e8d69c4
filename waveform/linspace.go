// SPDX-License-Identifier: EPL-2.0

package waveform

// Linspace returns n evenly spaced points over [start, end], both ends
// included. n <= 0 gives an empty slice and n == 1 gives [end].
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{end}
	}

	x := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range x {
		x[i] = start + float64(i)*step
	}
	x[n-1] = end

	return x
}
