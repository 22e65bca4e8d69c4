// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audsig/audio"
)

// go-mp3 always produces 16-bit little-endian stereo PCM.
const (
	outChannels = 2
	bytesPerVal = 2
)

// maxEmptyReads bounds consecutive Reads that return neither data nor an
// error.
const maxEmptyReads = 100

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// a trailing odd byte from the previous Read
	carry    [1]byte
	hasCarry bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outChannels }
func (s *source) Close() error    { return nil }

// BitDepth is 0: the PCM depth is a property of the decoder, not the stream.
func (s *source) BitDepth() int { return 0 }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerVal
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	off := 0
	if s.hasCarry {
		s.buf[0] = s.carry[0]
		s.hasCarry = false
		off = 1
	}

	// Read until at least one whole sample or an error.
	n := off
	var err error
	for empty := 0; n < bytesPerVal; {
		var m int
		m, err = s.dec.Read(s.buf[n:])
		n += m
		if err != nil {
			break
		}
		if m > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			err = io.ErrNoProgress
			break
		}
	}

	samples := n / bytesPerVal
	if n%bytesPerVal != 0 {
		s.carry[0] = s.buf[n-1]
		s.hasCarry = true
	}

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[bytesPerVal*i:]))
		dst[i] = float64(v) / 32768.0
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}
	if samples == 0 && err == io.EOF {
		return 0, io.EOF
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
