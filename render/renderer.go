// SPDX-License-Identifier: EPL-2.0

package render

import "sync"

// Renderer presents figures.
type Renderer interface {
	Render(fig Figure) error
}

type discard struct{}

func (discard) Render(fig Figure) error { return fig.Validate() }

// Discard validates figures and drops them.
var Discard Renderer = discard{}

// Recorder keeps every valid figure it is given. It is safe for concurrent use.
type Recorder struct {
	mtx     sync.Mutex
	figures []Figure
}

// Render stores fig after validating it.
func (r *Recorder) Render(fig Figure) error {
	if err := fig.Validate(); err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.figures = append(r.figures, fig)

	return nil
}

// Figures returns a copy of the recorded figures in render order.
func (r *Recorder) Figures() []Figure {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]Figure, len(r.figures))
	copy(out, r.figures)

	return out
}

// Last returns the most recent figure.
func (r *Recorder) Last() (Figure, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if len(r.figures) == 0 {
		return Figure{}, false
	}

	return r.figures[len(r.figures)-1], true
}

// Reset drops all recorded figures.
func (r *Recorder) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.figures = nil
}
