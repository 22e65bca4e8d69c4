// SPDX-License-Identifier: EPL-2.0

package audsig

import "github.com/ik5/audsig/waveform"

var std = New()

// Default returns the Toolkit behind the package-level functions.
func Default() *Toolkit { return std }

// Sin renders a sine wave with the default Toolkit.
func Sin(p waveform.Trig) { std.Sin(p) }

// Cos renders a cosine wave with the default Toolkit.
func Cos(p waveform.Trig) { std.Cos(p) }

// RectangularSignal renders a rectangular wave with the default Toolkit.
func RectangularSignal(p waveform.Rect) { std.RectangularSignal(p) }

// SawTooth renders a sawtooth with the default Toolkit.
func SawTooth(p waveform.Saw) { std.SawTooth(p) }

// ShowWave renders an audio file with the default Toolkit.
func ShowWave(path string) bool { return std.ShowWave(path) }

// OneDConvolution filters an audio file with the default Toolkit and writes
// the result to DefaultOutputPath.
func OneDConvolution(path string, kernel []float64) bool {
	return std.OneDConvolution(path, kernel)
}

// CrossCorrelation correlates two audio files with the default Toolkit.
func CrossCorrelation(path1, path2 string) bool {
	return std.CrossCorrelation(path1, path2)
}
