// SPDX-License-Identifier: EPL-2.0

// Package audsig is a small toolkit for looking at audio signals.
//
// It generates test waveforms, loads WAV and AIFF files (plus MP3 and Ogg
// Vorbis), filters them with a causal FIR convolution and computes their
// circular cross-correlation. Every result is handed to a render.Renderer.
//
// # Quick Start
//
// The package-level functions use a Toolkit that validates figures and
// drops them:
//
//	audsig.Sin(waveform.DefaultTrig())
//	ok := audsig.OneDConvolution("speech.wav", []float64{0.25, 0.5, 0.25})
//
// To see the figures, build a Toolkit around a render.Plotter:
//
//	p, _ := render.NewPlotter("plots", render.WithFormat("svg"))
//	tk := audsig.New(audsig.WithRenderer(p))
//	tk.CrossCorrelation("a.wav", "b.wav")
//
// # Results
//
// ShowWave, OneDConvolution and CrossCorrelation report success as a bool
// and log the reason for a failure. Their twins ShowWaveErr, ConvolveFile
// and CorrelateFiles return the computed data and the error instead.
//
// OneDConvolution also writes the filtered signal as a mono PCM WAV to the
// output path ("test.wav" unless WithOutputPath is given). The figure is
// rendered first; if loading or rendering fails nothing is written.
//
// The numeric engines live in package dsp and work on plain []float64.
package audsig
