// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"log/slog"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/loader"
	"github.com/ik5/audsig/render"
)

// SignalLoader reads one channel of an audio file.
type SignalLoader interface {
	Load(path string) (audio.Sequence, error)
}

// Toolkit runs the signal operations against its collaborators. It holds no
// per-call state and may be shared.
type Toolkit struct {
	renderer   render.Renderer
	loader     SignalLoader
	outputPath string
	logger     *slog.Logger
	progress   func(done, total int)
}

// New returns a Toolkit. Without options it loads files with loader.New,
// discards figures, logs nothing and writes to DefaultOutputPath.
func New(opts ...Option) *Toolkit {
	t := &Toolkit{
		renderer:   render.Discard,
		outputPath: DefaultOutputPath,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.loader == nil {
		t.loader = loader.New()
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	if t.renderer == nil {
		t.renderer = render.Discard
	}

	return t
}

// OutputPath returns the file OneDConvolution writes.
func (t *Toolkit) OutputPath() string { return t.outputPath }

func (t *Toolkit) render(fig render.Figure) error {
	if err := t.renderer.Render(fig); err != nil {
		t.logger.Error("render failed", "figure", fig.Name, "err", err)
		return err
	}

	t.logger.Debug("rendered", "figure", fig.Name, "points", len(fig.Y), "style", fig.Style)
	return nil
}
