// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/dsp"
	"github.com/ik5/audsig/formats/wav"
	"github.com/ik5/audsig/render"
	"github.com/ik5/audsig/waveform"
)

// Figure names used by the file operations.
const (
	FigureWave        = "wave"
	FigureFiltered    = "filtered"
	FigureCorrelation = "xcorr"
)

const timeLabel = "Time [s]"

// timeAxis spreads n points over the duration of seq.
func timeAxis(seq audio.Sequence, n int) []float64 {
	return waveform.Linspace(0, seq.Duration(), n)
}

// ShowWaveErr loads path and renders its first channel against time.
func (t *Toolkit) ShowWaveErr(path string) (audio.Sequence, error) {
	seq, err := t.loader.Load(path)
	if err != nil {
		return audio.Sequence{}, err
	}

	t.logger.Debug("loaded", "path", path, "samples", seq.Len(), "rate", seq.SampleRate)

	err = t.render(render.Figure{
		Name:   FigureWave,
		Title:  path,
		XLabel: timeLabel,
		X:      timeAxis(seq, seq.Len()),
		Y:      seq.Samples,
		YMin:   -2,
		YMax:   2,
		Grid:   true,
	})
	if err != nil {
		return audio.Sequence{}, fmt.Errorf("show %s: %w", path, err)
	}

	return seq, nil
}

// ShowWave is ShowWaveErr reporting only success.
func (t *Toolkit) ShowWave(path string) bool {
	if _, err := t.ShowWaveErr(path); err != nil {
		t.logger.Error("show wave failed", "path", path, "err", err)
		return false
	}
	return true
}

// ConvolveFile filters the first channel of path with kernel, renders the
// result and writes it to the output path as a mono WAV. It returns the
// filtered sequence, which keeps the source rate and bit depth.
func (t *Toolkit) ConvolveFile(path string, kernel []float64) (audio.Sequence, error) {
	seq, err := t.loader.Load(path)
	if err != nil {
		return audio.Sequence{}, err
	}

	out := audio.Sequence{
		Samples:    dsp.Convolve(seq.Samples, kernel),
		SampleRate: seq.SampleRate,
		BitDepth:   seq.BitDepth,
	}

	t.logger.Debug("convolved", "path", path, "samples", out.Len(), "taps", len(kernel))

	err = t.render(render.Figure{
		Name:   FigureFiltered,
		Title:  "Filtered: " + path,
		XLabel: timeLabel,
		X:      timeAxis(out, out.Len()),
		Y:      out.Samples,
		YMin:   -2,
		YMax:   2,
	})
	if err != nil {
		return audio.Sequence{}, fmt.Errorf("convolve %s: %w", path, err)
	}

	if err := writeWAV(t.outputPath, out); err != nil {
		return audio.Sequence{}, fmt.Errorf("convolve %s: %w", path, err)
	}

	t.logger.Debug("wrote", "path", t.outputPath, "bits", wav.OutputBitDepth(out))

	return out, nil
}

// OneDConvolution is ConvolveFile reporting only success.
func (t *Toolkit) OneDConvolution(path string, kernel []float64) bool {
	if _, err := t.ConvolveFile(path, kernel); err != nil {
		t.logger.Error("convolution failed", "path", path, "err", err)
		return false
	}
	return true
}

// CorrelateFiles computes the circular cross-correlation of the first
// channels of path1 and path2 over their common length and renders it. x
// spans the duration of the first file.
func (t *Toolkit) CorrelateFiles(path1, path2 string) (x, r []float64, err error) {
	a, err := t.loader.Load(path1)
	if err != nil {
		return nil, nil, err
	}

	b, err := t.loader.Load(path2)
	if err != nil {
		return nil, nil, err
	}

	if a.SampleRate != b.SampleRate {
		t.logger.Warn("sample rates differ", "first", a.SampleRate, "second", b.SampleRate)
	}

	var opts []dsp.Option
	if t.progress != nil {
		opts = append(opts, dsp.WithProgress(t.progress))
	}

	r = dsp.CrossCorrelate(a.Samples, b.Samples, opts...)
	x = timeAxis(a, len(r))

	t.logger.Debug("correlated", "first", a.Len(), "second", b.Len(), "lags", len(r))

	err = t.render(render.Figure{
		Name:   FigureCorrelation,
		Title:  "Cross correlation of: " + path1 + " and " + path2,
		XLabel: timeLabel,
		X:      x,
		Y:      r,
		YMin:   -2,
		YMax:   2,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("correlate %s and %s: %w", path1, path2, err)
	}

	return x, r, nil
}

// CrossCorrelation is CorrelateFiles reporting only success.
func (t *Toolkit) CrossCorrelation(path1, path2 string) bool {
	if _, _, err := t.CorrelateFiles(path1, path2); err != nil {
		t.logger.Error("cross correlation failed", "first", path1, "second", path2, "err", err)
		return false
	}
	return true
}

// writeWAV encodes seq next to path and renames it into place, so a failed
// encode leaves any existing file untouched.
func writeWAV(path string, seq audio.Sequence) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".audsig-*.wav")
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = wav.Encode(tmp, seq); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
