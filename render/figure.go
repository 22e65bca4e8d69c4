// SPDX-License-Identifier: EPL-2.0

package render

import "fmt"

// Style selects how a Figure is drawn.
type Style int

const (
	// Line joins consecutive samples with straight segments.
	Line Style = iota
	// Stairs holds each sample until the next one.
	Stairs
	// Function samples Figure.Func over [XMin, XMax].
	Function
)

func (s Style) String() string {
	switch s {
	case Line:
		return "line"
	case Stairs:
		return "stairs"
	case Function:
		return "function"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Figure is a single chart.
type Figure struct {
	// Name identifies the figure; Plotter uses it as the file stem.
	Name   string
	Title  string
	XLabel string
	YLabel string

	// X and Y hold sampled data for Line and Stairs.
	X []float64
	Y []float64

	// Func, XMin and XMax describe a Function figure.
	Func       func(float64) float64
	XMin, XMax float64

	// YMin and YMax fix the vertical axis. Equal values autoscale.
	YMin, YMax float64

	Style Style
	Grid  bool
}

// HasYLimits reports whether the vertical axis is fixed.
func (f Figure) HasYLimits() bool {
	return f.YMin < f.YMax
}

// Validate checks that f can be drawn.
func (f Figure) Validate() error {
	if f.Name == "" {
		return ErrEmptyName
	}

	if f.Style == Function {
		if f.Func == nil {
			return fmt.Errorf("%s: %w", f.Name, ErrNoFunction)
		}
		if !(f.XMin < f.XMax) {
			return fmt.Errorf("%s: [%g, %g]: %w", f.Name, f.XMin, f.XMax, ErrEmptyDomain)
		}
		return nil
	}

	if len(f.X) != len(f.Y) {
		return fmt.Errorf("%s: %d x %d: %w", f.Name, len(f.X), len(f.Y), ErrLengthMismatch)
	}

	return nil
}
