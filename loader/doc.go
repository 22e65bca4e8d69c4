// SPDX-License-Identifier: EPL-2.0

// Package loader turns an audio file path into a single-channel
// audio.Sequence.
//
// The container format is picked from the file extension through an
// audio.Registry. WAV and AIFF are always registered, along with MP3 and
// Ogg Vorbis:
//
//	l := loader.New()
//	seq, err := l.Load("speech.wav")
//
// Multi-channel files keep channel 0 unless WithDownmix is given, in which
// case channels are averaged. WithTargetRate resamples before collecting.
package loader
