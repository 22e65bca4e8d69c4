// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/utils"
)

// DefaultBitDepth is used when the sequence carries no usable bit depth.
const DefaultBitDepth = 16

// OutputBitDepth returns the bit depth Encode uses for seq: its own depth
// when it is 16, 24 or 32, DefaultBitDepth otherwise.
func OutputBitDepth(seq audio.Sequence) int {
	switch seq.BitDepth {
	case 16, 24, 32:
		return seq.BitDepth
	default:
		return DefaultBitDepth
	}
}

// Encode writes seq as a mono integer PCM WAV. Samples are clamped to
// [-1, 1] before quantisation.
func Encode(w io.WriteSeeker, seq audio.Sequence) error {
	if seq.SampleRate <= 0 {
		return fmt.Errorf("encode wav: %w", audio.ErrInvalidSampleRate)
	}

	bitDepth := OutputBitDepth(seq)

	data := make([]int, len(seq.Samples))
	for i, s := range seq.Samples {
		data[i] = utils.FloatToPCM(s, bitDepth)
	}

	enc := wav.NewEncoder(w, seq.SampleRate, bitDepth, 1, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: seq.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
