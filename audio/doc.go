// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample model and stream plumbing shared by
// the decoders and the signal engines.
//
//   - Source and Decoder interfaces, implemented by formats/*
//   - Registry mapping format keys (file extensions) to decoders
//   - ChannelSelector and MonoMixer, reducing a stream to one channel
//   - Resampler for sample rate conversion
//   - Sequence and Collect, the fully decoded single-channel buffer
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// Samples are float64, interleaved when there is more than one channel,
// nominally in [-1.0, 1.0]. Nothing in this package clamps.
//
// # Collecting
//
//	sel, _ := audio.NewChannelSelector(src, 0)
//	seq, err := audio.Collect(sel)
//	fmt.Println(seq.Len(), seq.SampleRate, seq.Duration())
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Other errors
// indicate problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio
