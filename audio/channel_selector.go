// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelSelector exposes a single channel of a multi-channel Source.
type ChannelSelector struct {
	src     Source
	channel int
	frames  *frameReader
}

// NewChannelSelector returns a mono view of channel ch of src.
func NewChannelSelector(src Source, ch int) (*ChannelSelector, error) {
	if ch < 0 || ch >= src.Channels() {
		return nil, fmt.Errorf("channel %d of %d: %w", ch, src.Channels(), ErrChannelOutOfRange)
	}

	return &ChannelSelector{
		src:     src,
		channel: ch,
		frames:  newFrameReader(src),
	}, nil
}

func (s *ChannelSelector) SampleRate() int { return s.src.SampleRate() }
func (s *ChannelSelector) Channels() int   { return 1 }
func (s *ChannelSelector) BitDepth() int   { return s.src.BitDepth() }
func (s *ChannelSelector) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *ChannelSelector) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := s.src.Channels()
	if channels == 1 {
		return s.src.ReadSamples(dst)
	}

	vals, err := s.frames.read(len(dst))
	frames := len(vals) / channels
	for f := range frames {
		dst[f] = vals[f*channels+s.channel]
	}

	return frames, err
}
