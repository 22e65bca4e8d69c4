// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding and encoding go through github.com/go-audio/wav.
//
// # Supported Formats
//
//   - Integer PCM, 8 (unsigned), 16, 24 and 32 bit
//   - IEEE float, 32 bit
//   - Plain and WAVE_FORMAT_EXTENSIBLE headers
//   - Any channel count on input, mono on output
//   - Any sample rate
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source that provides float64 samples
// normalised by 2^(bitDepth-1). 8-bit data is re-centred on 128 first, and
// float data is passed through.
//
// # Writing WAV Files
//
//	file, _ := os.Create("test.wav")
//	err := wav.Encode(file, seq)
//
// Encode writes one channel at the sequence bit depth (16 when the sequence
// has none), clamping samples to [-1, 1].
package wav
