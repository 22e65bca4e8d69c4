// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// collectBufSize is the read size used by Collect.
const collectBufSize = 4096

// Sequence is a fully decoded single channel of audio.
type Sequence struct {
	Samples    []float64
	SampleRate int
	// BitDepth of the source PCM, 0 when unknown.
	BitDepth int
}

// Len returns the number of samples.
func (s Sequence) Len() int { return len(s.Samples) }

// Duration returns the length of the sequence in seconds, 0 when the
// sample rate is not positive.
func (s Sequence) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// Collect drains a mono src into a Sequence. Multi-channel sources must be
// reduced first with NewChannelSelector or NewMonoMixer; Collect returns
// ErrInvalidDstSize otherwise.
func Collect(src Source) (Sequence, error) {
	if src.Channels() != 1 {
		return Sequence{}, fmt.Errorf("collect %d channels: %w", src.Channels(), ErrInvalidDstSize)
	}

	seq := Sequence{
		SampleRate: src.SampleRate(),
		BitDepth:   src.BitDepth(),
	}
	buf := make([]float64, collectBufSize)

	for empty := 0; ; {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			seq.Samples = append(seq.Samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return Sequence{}, fmt.Errorf("%w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return Sequence{}, fmt.Errorf("collect: %w", io.ErrNoProgress)
		}
	}

	if seq.Samples == nil {
		seq.Samples = []float64{}
	}

	return seq, nil
}
