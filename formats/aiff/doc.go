// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF and AIFF-C
// files carrying uncompressed signed PCM at 8, 16, 24 or 32 bits.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//
// Samples are returned as float64 normalised by 2^(bitDepth-1).
package aiff
