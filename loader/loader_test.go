// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/internal/audiotest"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"a.wav", "wav"},
		{"dir/B.WAV", "wav"},
		{"x.Aiff", "aiff"},
		{"song.tar.ogg", "ogg"},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := Format(tt.path); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aifc", "aiff", "mp3", "ogg", "wav", "wave"}
	if diff := cmp.Diff(want, DefaultRegistry().Formats()); diff != "" {
		t.Errorf("Formats() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_WAV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.wav")
	samples := []float64{0, 0.5, -0.5, 0.25}
	if err := audiotest.WriteWAV(path, 8000, 16, 1, audiotest.Int16(samples...)); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}

	seq, err := New().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if seq.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", seq.SampleRate)
	}
	if seq.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", seq.BitDepth)
	}
	if diff := cmp.Diff(samples, seq.Samples, approx); diff != "" {
		t.Errorf("Samples mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_AIFF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.aiff")
	samples := []float64{0.1, -0.2, 0.3}
	if err := audiotest.WriteAIFF(path, 11025, 16, 1, audiotest.Int16(samples...)); err != nil {
		t.Fatalf("WriteAIFF() error = %v", err)
	}

	seq, err := New().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if seq.SampleRate != 11025 {
		t.Errorf("SampleRate = %d, want 11025", seq.SampleRate)
	}
	if diff := cmp.Diff(samples, seq.Samples, approx); diff != "" {
		t.Errorf("Samples mismatch (-want +got):\n%s", diff)
	}
}

func writeStereo(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stereo.wav")
	// L, R interleaved.
	data := audiotest.Int16(0.5, -0.5, 0.25, 0.75, -1, 0)
	if err := audiotest.WriteWAV(path, 8000, 16, 2, data); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}
	return path
}

func TestLoad_StereoKeepsFirstChannel(t *testing.T) {
	t.Parallel()

	seq, err := New().Load(writeStereo(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff([]float64{0.5, 0.25, -1}, seq.Samples, approx); diff != "" {
		t.Errorf("Samples mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_StereoDownmix(t *testing.T) {
	t.Parallel()

	seq, err := New(WithDownmix()).Load(writeStereo(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff([]float64{0, 0.5, -0.5}, seq.Samples, approx); diff != "" {
		t.Errorf("Samples mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_TargetRate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "long.wav")
	data := make([]int, 8000)
	if err := audiotest.WriteWAV(path, 8000, 16, 1, data); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}

	seq, err := New(WithTargetRate(4000)).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if seq.SampleRate != 4000 {
		t.Errorf("SampleRate = %d, want 4000", seq.SampleRate)
	}
	if n := seq.Len(); n < 3990 || n > 4010 {
		t.Errorf("Len() = %d, want about 4000", n)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("definitely not RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		is   error
	}{
		{"unknown extension", filepath.Join(dir, "a.flac"), ErrUnsupportedFormat},
		{"no extension", filepath.Join(dir, "a"), ErrUnsupportedFormat},
		{"missing file", filepath.Join(dir, "missing.wav"), fs.ErrNotExist},
		{"not a wav", garbage, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New().Load(tt.path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Load() error = %v, want %v", err, tt.is)
			}
		})
	}
}

type fakeDecoder struct {
	src audio.Source
}

func (d fakeDecoder) Decode(io.Reader) (audio.Source, error) { return d.src, nil }

func TestLoad_CustomRegistry(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "x.raw")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	reg := audio.NewRegistry()
	reg.Register("raw", fakeDecoder{src: audiotest.NewConstantSource(100, 3, 5, 0.5).WithBitDepth(24)})

	seq, err := New(WithRegistry(reg)).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if seq.Len() != 5 || seq.BitDepth != 24 || seq.SampleRate != 100 {
		t.Errorf("Load() = %d samples, %d bit, %d Hz; want 5, 24, 100", seq.Len(), seq.BitDepth, seq.SampleRate)
	}

	if _, err := New(WithRegistry(reg)).Load("y.wav"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(y.wav) error = %v, want ErrUnsupportedFormat", err)
	}
}
