// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audsig/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	tmp        []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// BitDepth is 0: vorbis decodes straight to floating point.
func (s *source) BitDepth() int { return 0 }

func (s *source) ReadSamples(dst []float64) (int, error) {
	// Only whole frames are requested from the decoder.
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.tmp) < want {
		s.tmp = make([]float32, want)
	}
	s.tmp = s.tmp[:want]

	// Read returns interleaved values, a multiple of the channel count.
	n, err := s.dec.Read(s.tmp)
	for i := range n {
		dst[i] = float64(s.tmp[i])
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		tmp:        make([]float32, 4096),
	}, nil
}
