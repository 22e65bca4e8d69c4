// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// pcmEncoder is satisfied by both go-audio wav and aiff encoders.
type pcmEncoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// WriteWAV writes interleaved integer PCM data to a WAV file at path.
func WriteWAV(path string, sampleRate, bitDepth, channels int, data []int) error {
	return writeFile(path, sampleRate, bitDepth, channels, data, func(f *os.File) pcmEncoder {
		return wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	})
}

// WriteAIFF writes interleaved integer PCM data to an AIFF file at path.
func WriteAIFF(path string, sampleRate, bitDepth, channels int, data []int) error {
	return writeFile(path, sampleRate, bitDepth, channels, data, func(f *os.File) pcmEncoder {
		return aiff.NewEncoder(f, sampleRate, bitDepth, channels)
	})
}

// Int16 scales samples in [-1, 1] to 16-bit integer PCM.
func Int16(samples ...float64) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = int(s * 32767)
	}
	return out
}

func writeFile(path string, sampleRate, bitDepth, channels int, data []int, newEnc func(*os.File) pcmEncoder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	enc := newEnc(f)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder %s: %w", path, err)
	}

	return nil
}
