// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages all channels of src into a single channel.
type MonoMixer struct {
	src    Source
	frames *frameReader
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:    src,
		frames: newFrameReader(src),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BitDepth() int   { return m.src.BitDepth() }
func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with up to len(dst) mono frames.
func (m *MonoMixer) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	vals, err := m.frames.read(len(dst))
	frames := len(vals) / channels

	inv := 1.0 / float64(channels)
	for f := range frames {
		base := f * channels
		sum := 0.0
		for c := range channels {
			sum += vals[base+c]
		}
		dst[f] = sum * inv
	}

	return frames, err
}
