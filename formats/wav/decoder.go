// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/utils"
)

// Format tags of the fmt chunk.
const (
	wavFormatPCM        = 0x0001
	wavFormatFloat      = 0x0003
	wavFormatExtensible = 0xFFFE
)

// extensibleFmtSize is the fmt chunk size of WAVE_FORMAT_EXTENSIBLE; the
// sub-format GUID occupies its last 16 bytes.
const extensibleFmtSize = 40

// guidTail is the KSDATAFORMAT_SUBTYPE GUID after its leading format tag.
var guidTail = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// pcmReader is the subset of wav.Decoder used by source, to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	format     *goaudio.Format
	sampleRate int
	channels   int
	bitDepth   int
	// encoding is wavFormatPCM or wavFormatFloat; zero means PCM.
	encoding uint16
	intBuf   *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// BitDepth returns 0 for IEEE float data, which has no integer depth.
func (s *source) BitDepth() int {
	if s.encoding == wavFormatFloat {
		return 0
	}
	return s.bitDepth
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	s.convert(dst[:n], s.intBuf.Data[:n])

	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

// convert normalises raw values from PCMBuffer into dst.
func (s *source) convert(dst []float64, raw []int) {
	switch {
	case s.encoding == wavFormatFloat:
		// go-audio hands 32-bit words back as int32; the bits are the float.
		for i, v := range raw {
			dst[i] = float64(math.Float32frombits(uint32(v)))
		}

	case s.bitDepth == 8:
		// 8-bit WAV is unsigned, centred on 128.
		for i, v := range raw {
			dst[i] = float64(v-128) / 128
		}

	default:
		scale := utils.PCMScale(s.bitDepth)
		for i, v := range raw {
			dst[i] = float64(v) / scale
		}
	}
}

// subFormat returns the format tag carried in the sub-format GUID of a
// WAVE_FORMAT_EXTENSIBLE fmt chunk. rs is read from start and left where
// it was found.
func subFormat(rs io.ReadSeeker, start int64) (tag uint16, err error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer func() {
		if _, serr := rs.Seek(pos, io.SeekStart); serr != nil && err == nil {
			err = fmt.Errorf("%w", serr)
		}
	}()

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("%w: fmt chunk: %w", ErrUnsupportedWavLayout, err)
		}

		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		if ch.Size < extensibleFmtSize {
			return 0, fmt.Errorf("extensible fmt of %d bytes: %w", ch.Size, ErrUnsupportedWavLayout)
		}

		buf := make([]byte, extensibleFmtSize)
		if _, err := io.ReadFull(ch, buf); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}

		if !bytes.Equal(buf[26:], guidTail) {
			return 0, fmt.Errorf("sub-format GUID %x: %w", buf[24:], ErrUnsupportedEncoding)
		}

		return binary.LittleEndian.Uint16(buf[24:26]), nil
	}
}

// Decoder decodes WAV through go-audio/wav: integer PCM at 8 (unsigned),
// 16, 24 or 32 bit, and 32-bit IEEE float, either with a plain or a
// WAVE_FORMAT_EXTENSIBLE header.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	encoding := dec.WavAudioFormat
	if encoding == wavFormatExtensible {
		if encoding, err = subFormat(rs, start); err != nil {
			return nil, err
		}
	}

	switch encoding {
	case wavFormatPCM:
		switch dec.BitDepth {
		case 8, 16, 24, 32:
		default:
			return nil, fmt.Errorf("%d bits: %w", dec.BitDepth, ErrUnsupportedBitDepth)
		}

	case wavFormatFloat:
		// go-audio has no 64-bit sample reader.
		if dec.BitDepth != 32 {
			return nil, fmt.Errorf("%d bit float: %w", dec.BitDepth, ErrUnsupportedBitDepth)
		}

	default:
		return nil, fmt.Errorf("format tag 0x%04x: %w", encoding, ErrUnsupportedEncoding)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		dec:        dec,
		format:     format,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
		encoding:   encoding,
	}, nil
}
