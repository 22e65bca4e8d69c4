// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"github.com/ik5/audsig/render"
	"github.com/ik5/audsig/waveform"
)

// Figure names used by the generators.
const (
	FigureSin         = "sin"
	FigureCos         = "cos"
	FigureRectangular = "rectangular"
	FigureSawTooth    = "sawtooth"
)

// Sin renders sin(Frequency*x) over [0, Width] with y limits [-2, 2].
func (t *Toolkit) Sin(p waveform.Trig) {
	x, y := waveform.Sine(p)
	_ = t.render(render.Figure{
		Name: FigureSin, Title: "sin", X: x, Y: y,
		YMin: -2, YMax: 2,
	})
}

// Cos renders cos(Frequency*x) over [0, Width] with y limits [-2, 2].
func (t *Toolkit) Cos(p waveform.Trig) {
	x, y := waveform.Cosine(p)
	_ = t.render(render.Figure{
		Name: FigureCos, Title: "cos", X: x, Y: y,
		YMin: -2, YMax: 2,
	})
}

// RectangularSignal renders the 0/1 square wave as stairs on a grid.
func (t *Toolkit) RectangularSignal(p waveform.Rect) {
	x, y := waveform.Rectangular(p)
	_ = t.render(render.Figure{
		Name: FigureRectangular, Title: "rectangular signal", X: x, Y: y,
		YMin: -0.5, YMax: 1.5,
		Style: render.Stairs,
		Grid:  true,
	})
}

// SawTooth renders the continuous sawtooth over the default domain.
func (t *Toolkit) SawTooth(p waveform.Saw) {
	_ = t.render(render.Figure{
		Name: FigureSawTooth, Title: "sawtooth",
		Func: waveform.SawToothFunc(p),
		XMin: waveform.SawDomainMin, XMax: waveform.SawDomainMax,
		YMin: -1, YMax: 1,
		Style: render.Function,
	})
}
