// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultFormat is the image format used when none is given.
	DefaultFormat = "png"
	// FunctionSamples is the number of points a Function figure is drawn with.
	FunctionSamples = 500
)

var (
	defaultWidth  = 8 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

var formats = map[string]bool{
	"png":  true,
	"svg":  true,
	"pdf":  true,
	"eps":  true,
	"jpg":  true,
	"jpeg": true,
	"tif":  true,
	"tiff": true,
}

// Plotter renders each figure into Dir/<Name>.<Format> with gonum/plot.
// Rendering a name again overwrites the file.
type Plotter struct {
	dir    string
	format string
	width  vg.Length
	height vg.Length
}

// PlotterOption configures a Plotter.
type PlotterOption func(*Plotter)

// WithFormat selects the image format by extension (png, svg, pdf, ...).
func WithFormat(format string) PlotterOption {
	return func(p *Plotter) {
		p.format = strings.ToLower(strings.TrimPrefix(format, "."))
	}
}

// WithSize sets the image size.
func WithSize(width, height vg.Length) PlotterOption {
	return func(p *Plotter) {
		p.width = width
		p.height = height
	}
}

// NewPlotter returns a Plotter writing into dir.
func NewPlotter(dir string, opts ...PlotterOption) (*Plotter, error) {
	p := &Plotter{
		dir:    dir,
		format: DefaultFormat,
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(p)
	}

	if !formats[p.format] {
		return nil, fmt.Errorf("%q: %w", p.format, ErrUnsupportedFormat)
	}

	return p, nil
}

// Path returns the file a figure named name is written to.
func (p *Plotter) Path(name string) string {
	return filepath.Join(p.dir, name+"."+p.format)
}

// Render draws fig and saves it.
func (p *Plotter) Render(fig Figure) error {
	if err := fig.Validate(); err != nil {
		return err
	}

	plt, err := build(fig)
	if err != nil {
		return fmt.Errorf("plot %s: %w", fig.Name, err)
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := plt.Save(p.width, p.height, p.Path(fig.Name)); err != nil {
		return fmt.Errorf("save %s: %w", fig.Name, err)
	}

	return nil
}

func build(fig Figure) (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = fig.Title
	plt.X.Label.Text = fig.XLabel
	plt.Y.Label.Text = fig.YLabel

	if fig.Grid {
		plt.Add(plotter.NewGrid())
	}

	switch fig.Style {
	case Function:
		fn := plotter.NewFunction(fig.Func)
		fn.XMin = fig.XMin
		fn.XMax = fig.XMax
		fn.Samples = FunctionSamples
		fn.Color = color.RGBA{B: 255, A: 255}
		plt.Add(fn)

		// Function does not report a data range.
		plt.X.Min = fig.XMin
		plt.X.Max = fig.XMax

	default:
		if len(fig.X) == 0 {
			plt.X.Min, plt.X.Max = 0, 1
			break
		}

		xys := make(plotter.XYs, len(fig.X))
		for i := range fig.X {
			xys[i].X = fig.X[i]
			xys[i].Y = fig.Y[i]
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		line.Color = color.RGBA{B: 255, A: 255}
		if fig.Style == Stairs {
			line.StepStyle = plotter.PostStep
		}
		plt.Add(line)
	}

	if fig.HasYLimits() {
		plt.Y.Min = fig.YMin
		plt.Y.Max = fig.YMax
	}

	return plt, nil
}
