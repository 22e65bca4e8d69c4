// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxEmptyReads bounds consecutive reads that return neither data nor an
// error before a reader gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// frameReader reads whole interleaved frames from src. A partial frame at
// the end of a read is kept and completed by the next one.
type frameReader struct {
	src Source
	buf []float64
	// buf[:have] holds buffered values; buf[:consumed] was returned by the
	// last read.
	have     int
	consumed int
}

func newFrameReader(src Source) *frameReader {
	return &frameReader{src: src}
}

// read returns up to maxFrames (at least 1) whole frames, valid until the
// next call. It returns at least one frame or a non-nil error; a trailing
// partial frame at EOF is dropped.
func (r *frameReader) read(maxFrames int) ([]float64, error) {
	channels := r.src.Channels()

	if r.consumed > 0 {
		r.have = copy(r.buf, r.buf[r.consumed:r.have])
		r.consumed = 0
	}

	needed := max(maxFrames, 1) * channels
	if cap(r.buf) < needed {
		buf := make([]float64, max(needed, 8192))
		copy(buf, r.buf[:r.have])
		r.buf = buf
	}
	r.buf = r.buf[:needed]

	for empty := 0; ; {
		n, err := r.src.ReadSamples(r.buf[r.have:needed])
		r.have += n

		whole := (r.have / channels) * channels
		if whole > 0 || err != nil {
			r.consumed = whole
			if err != nil && err != io.EOF {
				err = fmt.Errorf("%w", err)
			}
			return r.buf[:whole], err
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}
}
