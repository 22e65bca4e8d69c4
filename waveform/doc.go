// SPDX-License-Identifier: EPL-2.0

// Package waveform generates the canonical test signals as (x, y) pairs.
//
//	x, y := waveform.Sine(waveform.DefaultTrig())
//	x, y = waveform.Rectangular(waveform.Rect{Frequency: 2})
//	f := waveform.SawToothFunc(waveform.DefaultSaw())
//
// Generators have no failure mode. Parameter combinations that produce no
// points yield empty slices.
package waveform
