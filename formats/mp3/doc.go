// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3. The stream is always stereo; samples are
// float64 in [-1, 1).
package mp3
