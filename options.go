// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"log/slog"

	"github.com/ik5/audsig/render"
)

// DefaultOutputPath is where OneDConvolution writes its WAV.
const DefaultOutputPath = "test.wav"

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithRenderer sets the renderer figures are sent to.
func WithRenderer(r render.Renderer) Option {
	return func(t *Toolkit) {
		t.renderer = r
	}
}

// WithLoader sets how audio files are read.
func WithLoader(l SignalLoader) Option {
	return func(t *Toolkit) {
		t.loader = l
	}
}

// WithOutputPath sets the file OneDConvolution writes. Relative paths are
// resolved against the working directory.
func WithOutputPath(path string) Option {
	return func(t *Toolkit) {
		t.outputPath = path
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(t *Toolkit) {
		t.logger = l
	}
}

// WithProgress reports cross-correlation progress, one call per lag.
func WithProgress(fn func(done, total int)) Option {
	return func(t *Toolkit) {
		t.progress = fn
	}
}
