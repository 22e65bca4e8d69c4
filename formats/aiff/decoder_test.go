// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audsig/internal/audiotest"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	samples      []int
	offset       int
	returnErrors bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func newMockSource(bitDepth int, samples []int) *source {
	return &source{
		dec:        &mockAiffReader{sampleRate: 44100, channels: 1, samples: samples},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   bitDepth,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte{})); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixture.aiff")
	if err := audiotest.WriteAIFF(path, 11025, 16, 2, []int{16384, -16384, 8192, -8192}); err != nil {
		t.Fatalf("WriteAIFF() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 11025 {
		t.Errorf("SampleRate() = %d, want 11025", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	dst := make([]float64, 8)
	n, _ := src.ReadSamples(dst)
	want := []float64{0.5, -0.5, 0.25, -0.25}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newMockSource(24, make([]int, 10))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if src.BitDepth() != 24 {
		t.Errorf("BitDepth() = %d, want 24", src.BitDepth())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	src := newMockSource(16, []int{100, 200, 300, 400, 500})
	dst := make([]float64, 2)

	for i, wantErr := range []error{nil, nil, io.EOF} {
		n, err := src.ReadSamples(dst)
		if err != wantErr {
			t.Errorf("read %d: error = %v, want %v", i, err, wantErr)
		}
		if i < 2 && n != 2 {
			t.Errorf("read %d: n = %d, want 2", i, n)
		}
		if i == 2 && n != 1 {
			t.Errorf("read %d: n = %d, want 1", i, n)
		}
	}

	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("final read = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newMockSource(16, nil)
	src.dec.(*mockAiffReader).returnErrors = true

	_, err := src.ReadSamples(make([]float64, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		sample   int
		want     float64
	}{
		{8, 64, 0.5},
		{16, -32768, -1},
		{24, 4194304, 0.5},
		{32, -1073741824, -0.5},
	}

	for _, tt := range tests {
		src := newMockSource(tt.bitDepth, []int{tt.sample})
		dst := make([]float64, 1)

		if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
			t.Fatalf("%d bit: ReadSamples() error = %v", tt.bitDepth, err)
		}
		if dst[0] != tt.want {
			t.Errorf("%d bit: got %v, want %v", tt.bitDepth, dst[0], tt.want)
		}
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 44100)
	dst := make([]float64, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := newMockSource(16, samples)
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
