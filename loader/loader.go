// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/formats/aiff"
	"github.com/ik5/audsig/formats/mp3"
	"github.com/ik5/audsig/formats/vorbis"
	"github.com/ik5/audsig/formats/wav"
)

// Loader loads audio files into memory. The zero value is not usable; use
// New.
type Loader struct {
	registry   *audio.Registry
	downmix    bool
	targetRate int
}

// Option configures a Loader.
type Option func(*Loader)

// WithDownmix averages all channels instead of keeping channel 0.
func WithDownmix() Option {
	return func(l *Loader) {
		l.downmix = true
	}
}

// WithTargetRate resamples loaded audio to rate Hz. A rate of 0 keeps the
// source rate.
func WithTargetRate(rate int) Option {
	return func(l *Loader) {
		l.targetRate = rate
	}
}

// WithRegistry replaces the default decoder registry.
func WithRegistry(r *audio.Registry) Option {
	return func(l *Loader) {
		l.registry = r
	}
}

// DefaultRegistry returns a registry with every built-in decoder, keyed by
// lower-case file extension without the dot.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aifc", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	return r
}

// New returns a Loader using DefaultRegistry unless overridden.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}

	if l.registry == nil {
		l.registry = DefaultRegistry()
	}

	return l
}

// Format returns the registry key for path.
func Format(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Load decodes the file at path and returns one channel of it.
func (l *Loader) Load(path string) (audio.Sequence, error) {
	format := Format(path)

	dec, ok := l.registry.Get(format)
	if !ok {
		return audio.Sequence{}, fmt.Errorf("load %s: %q: %w", path, format, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Sequence{}, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Sequence{}, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	mono, err := l.pipeline(src)
	if err != nil {
		return audio.Sequence{}, fmt.Errorf("load %s: %w", path, err)
	}

	seq, err := audio.Collect(mono)
	if err != nil {
		return audio.Sequence{}, fmt.Errorf("read %s: %w", path, err)
	}

	return seq, nil
}

// pipeline reduces src to one channel, resampling first when requested.
func (l *Loader) pipeline(src audio.Source) (audio.Source, error) {
	if l.targetRate > 0 && l.targetRate != src.SampleRate() {
		rs, err := audio.NewResampler(src, l.targetRate)
		if err != nil {
			return nil, err
		}
		src = rs
	}

	if src.Channels() == 1 {
		return src, nil
	}

	if l.downmix {
		return audio.NewMonoMixer(src), nil
	}

	return audio.NewChannelSelector(src, 0)
}
