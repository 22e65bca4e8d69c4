// SPDX-License-Identifier: EPL-2.0

// Command audsig draws test waveforms and analyses audio files.
//
// Usage:
//
//	audsig <command> [flags] [args]
//
// Commands:
//
//	sin, cos    sampled sine or cosine (-width, -freq, -precision)
//	rect        rectangular wave (-freq)
//	saw         sawtooth (-freq)
//	show        plot an audio file against time
//	conv        filter an audio file with -kernel and write -wav
//	xcorr       circular cross-correlation of two audio files
//	formats     list the file extensions that can be loaded
//
// Figures are written to -dir as -format images, one per command.
//
// Examples:
//
//	audsig sin -freq 2
//	audsig show -format svg speech.wav
//	audsig conv -kernel 0.25,0.5,0.25 -wav filtered.wav speech.wav
//	audsig xcorr -v a.wav b.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb"
	"github.com/ik5/audsig"
	"github.com/ik5/audsig/loader"
	"github.com/ik5/audsig/render"
	"github.com/ik5/audsig/waveform"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type common struct {
	dir      string
	format   string
	verbose  bool
	downmix  bool
	rate     int
	progress bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.dir, "dir", "plots", "directory figures are written to")
	fs.StringVar(&c.format, "format", render.DefaultFormat, "image format: png, svg, pdf, eps, jpg or tif")
	fs.BoolVar(&c.verbose, "v", false, "log debug details")
	fs.BoolVar(&c.downmix, "downmix", false, "average all channels instead of using the first")
	fs.IntVar(&c.rate, "rate", 0, "resample audio to this rate in Hz (0 keeps the file rate)")
	fs.BoolVar(&c.progress, "progress", true, "show a progress bar for long computations")
}

func (c *common) toolkit(stderr io.Writer, extra ...audsig.Option) (*audsig.Toolkit, error) {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	plotter, err := render.NewPlotter(c.dir, render.WithFormat(c.format))
	if err != nil {
		return nil, err
	}

	var lopts []loader.Option
	if c.downmix {
		lopts = append(lopts, loader.WithDownmix())
	}
	if c.rate > 0 {
		lopts = append(lopts, loader.WithTargetRate(c.rate))
	}

	opts := []audsig.Option{
		audsig.WithRenderer(plotter),
		audsig.WithLoader(loader.New(lopts...)),
		audsig.WithLogger(logger),
	}

	return audsig.New(append(opts, extra...)...), nil
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: audsig <command> [flags] [args]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  sin, cos   sampled sine or cosine\n")
	fmt.Fprintf(w, "  rect       rectangular wave\n")
	fmt.Fprintf(w, "  saw        sawtooth\n")
	fmt.Fprintf(w, "  show       plot an audio file\n")
	fmt.Fprintf(w, "  conv       filter an audio file and write the result as WAV\n")
	fmt.Fprintf(w, "  xcorr      cross-correlate two audio files\n")
	fmt.Fprintf(w, "  formats    list loadable file extensions\n")
	fmt.Fprintf(w, "\nRun 'audsig <command> -h' for the flags of a command.\n")
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	cmd, args := args[0], args[1:]

	var err error
	switch cmd {
	case "sin", "cos":
		err = runTrig(cmd, args, stderr)
	case "rect":
		err = runRect(args, stderr)
	case "saw":
		err = runSaw(args, stderr)
	case "show":
		err = runShow(args, stderr)
	case "conv":
		err = runConv(args, stdout, stderr)
	case "xcorr":
		err = runXCorr(args, stdout, stderr)
	case "formats":
		for _, f := range loader.DefaultRegistry().Formats() {
			fmt.Fprintln(stdout, f)
		}
	case "-h", "-help", "--help", "help":
		usage(stdout)
	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n\n", cmd)
		usage(stderr)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
}

func newFlagSet(name string, stderr io.Writer, c *common) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.register(fs)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func runTrig(name string, args []string, stderr io.Writer) error {
	var c common
	fs := newFlagSet(name, stderr, &c)
	p := waveform.DefaultTrig()
	fs.Float64Var(&p.Width, "width", p.Width, "x range [0, width]")
	fs.Float64Var(&p.Frequency, "freq", p.Frequency, "angular frequency")
	fs.IntVar(&p.Precision, "precision", p.Precision, "points per unit of frequency")
	if err := parse(fs, args); err != nil {
		return err
	}

	tk, err := c.toolkit(stderr)
	if err != nil {
		return err
	}

	if name == "sin" {
		tk.Sin(p)
	} else {
		tk.Cos(p)
	}
	return nil
}

func runRect(args []string, stderr io.Writer) error {
	var c common
	fs := newFlagSet("rect", stderr, &c)
	p := waveform.DefaultRect()
	fs.Float64Var(&p.Frequency, "freq", p.Frequency, "frequency")
	if err := parse(fs, args); err != nil {
		return err
	}

	tk, err := c.toolkit(stderr)
	if err != nil {
		return err
	}

	tk.RectangularSignal(p)
	return nil
}

func runSaw(args []string, stderr io.Writer) error {
	var c common
	fs := newFlagSet("saw", stderr, &c)
	p := waveform.DefaultSaw()
	fs.Float64Var(&p.Frequency, "freq", p.Frequency, "frequency")
	if err := parse(fs, args); err != nil {
		return err
	}

	tk, err := c.toolkit(stderr)
	if err != nil {
		return err
	}

	tk.SawTooth(p)
	return nil
}

func runShow(args []string, stderr io.Writer) error {
	var c common
	fs := newFlagSet("show", stderr, &c)
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("show takes one audio file: %w", errUsage)
	}

	tk, err := c.toolkit(stderr)
	if err != nil {
		return err
	}

	_, err = tk.ShowWaveErr(fs.Arg(0))
	return err
}

func runConv(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := newFlagSet("conv", stderr, &c)
	kernelFlag := fs.String("kernel", "1", "comma or space separated filter taps")
	out := fs.String("wav", audsig.DefaultOutputPath, "file the filtered signal is written to")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("conv takes one audio file: %w", errUsage)
	}

	kernel, err := parseKernel(*kernelFlag)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	tk, err := c.toolkit(stderr, audsig.WithOutputPath(*out))
	if err != nil {
		return err
	}

	seq, err := tk.ConvolveFile(fs.Arg(0), kernel)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d samples at %d Hz\n", tk.OutputPath(), seq.Len(), seq.SampleRate)
	return nil
}

func runXCorr(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := newFlagSet("xcorr", stderr, &c)
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("xcorr takes two audio files: %w", errUsage)
	}

	var bar *pb.ProgressBar
	var extra []audsig.Option
	if c.progress {
		extra = append(extra, audsig.WithProgress(func(done, total int) {
			if bar == nil {
				bar = pb.New(total).Prefix("Correlating")
				bar.Output = stderr
				bar.Start()
			}
			bar.Increment()
		}))
	}

	tk, err := c.toolkit(stderr, extra...)
	if err != nil {
		return err
	}

	_, r, err := tk.CorrelateFiles(fs.Arg(0), fs.Arg(1))
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if len(r) > 0 {
		lag, peak := argmax(r)
		fmt.Fprintf(stdout, "%d lags, peak %g at lag %d\n", len(r), peak, lag)
	} else {
		fmt.Fprintln(stdout, "0 lags")
	}
	return nil
}

// parseKernel reads taps separated by commas or whitespace.
func parseKernel(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	kernel := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("kernel tap %q: %w", f, err)
		}
		kernel = append(kernel, v)
	}

	return kernel, nil
}

func argmax(v []float64) (int, float64) {
	best := 0
	for i := range v {
		if v[i] > v[best] {
			best = i
		}
	}
	return best, v[best]
}
