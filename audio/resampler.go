// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audsig/utils"
)

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass is applied to the input when downsampling.
type Resampler struct {
	src      Source
	frames   *frameReader
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window [4][]float64
	valid  [4]bool
	primed bool

	// fractional position between window[1] and window[2]
	pos float64

	frame []float64
	eof   bool

	lowpass bool
	alpha   float64
	state   []float64
}

// NewResampler returns a Resampler converting src to dstRate Hz.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("resample %d -> %d: %w", src.SampleRate(), dstRate, ErrInvalidSampleRate)
	}

	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		frames:   newFrameReader(src),
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float64, channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float64, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float64, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BitDepth() int   { return r.src.BitDepth() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next whole source frame into r.frame. ok is false
// when the source has none left.
func (r *Resampler) nextFrame() (ok bool, err error) {
	if r.eof {
		return false, io.EOF
	}

	vals, err := r.frames.read(1)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, err
	}
	if len(vals) < r.channels {
		return false, nil
	}

	copy(r.frame, vals)
	return true, nil
}

// readFrame is nextFrame followed by the low-pass when downsampling.
func (r *Resampler) readFrame() (ok bool, err error) {
	ok, err = r.nextFrame()
	if !ok {
		return false, err
	}

	if r.lowpass {
		for c := range r.channels {
			r.frame[c] = r.alpha*r.frame[c] + (1-r.alpha)*r.state[c]
			r.state[c] = r.frame[c]
		}
	}

	return true, nil
}

// prime fills the interpolation window from the start of the stream.
func (r *Resampler) prime() error {
	r.primed = true

	for i := range r.window {
		if i == 0 && r.lowpass {
			// Seed the filter with the first frame to avoid a ramp-in.
			ok, err := r.nextFrame()
			if err != nil && err != io.EOF {
				return err
			}
			if !ok {
				return io.EOF
			}
			copy(r.state, r.frame)
			copy(r.window[0], r.frame)
			r.valid[0] = true
			continue
		}

		ok, err := r.readFrame()
		if err != nil && err != io.EOF {
			return err
		}
		if !ok {
			if i == 0 {
				return io.EOF
			}
			// Hold the last frame for the remaining slots.
			for j := i; j < len(r.window); j++ {
				copy(r.window[j], r.window[i-1])
				r.valid[j] = true
			}
			return nil
		}
		copy(r.window[i], r.frame)
		r.valid[i] = true
	}

	return nil
}

// advance shifts the window by one source frame.
func (r *Resampler) advance() error {
	if r.eof && !r.valid[3] {
		return io.EOF
	}

	for i := range 3 {
		copy(r.window[i], r.window[i+1])
		r.valid[i] = r.valid[i+1]
	}

	ok, err := r.readFrame()
	if err != nil && err != io.EOF {
		return err
	}
	r.valid[3] = ok
	if ok {
		copy(r.window[3], r.frame)
	}

	if !r.valid[2] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float64) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			return written * r.channels, io.EOF
		}

		for c := range r.channels {
			y0 := r.window[1][c]
			if r.valid[0] {
				y0 = r.window[0][c]
			}
			y3 := r.window[2][c]
			if r.valid[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, r.window[1][c], r.window[2][c], y3, r.pos)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
