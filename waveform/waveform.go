// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

// Defaults for the generator parameters.
const (
	DefaultWidth     = 6.28
	DefaultFrequency = 1.0
	DefaultPrecision = 100
)

// Rectangular waves are laid out over [0, RectDomain].
const RectDomain = 10.0

// Sawtooth sampling domain and point count.
const (
	SawDomainMin = -5.0
	SawDomainMax = 5.0
	SawSamples   = 500
)

// Trig parameterises Sine and Cosine.
type Trig struct {
	// Width is the x-axis extent, starting at 0.
	Width float64
	// Frequency is the angular multiplier applied to x.
	Frequency float64
	// Precision is the number of points per unit of frequency.
	Precision int
}

// DefaultTrig returns width 6.28, frequency 1 and precision 100.
func DefaultTrig() Trig {
	return Trig{Width: DefaultWidth, Frequency: DefaultFrequency, Precision: DefaultPrecision}
}

// Points returns int(Precision * Frequency), the number of samples generated.
func (p Trig) Points() int {
	return int(float64(p.Precision) * p.Frequency)
}

// Rect parameterises Rectangular.
type Rect struct {
	Frequency float64
}

// DefaultRect returns frequency 1.
func DefaultRect() Rect { return Rect{Frequency: DefaultFrequency} }

// Points returns int(2*RectDomain*Frequency + 1).
func (p Rect) Points() int {
	return int(RectDomain*2*p.Frequency + 1)
}

// Saw parameterises SawTooth.
type Saw struct {
	Frequency float64
}

// DefaultSaw returns frequency 1.
func DefaultSaw() Saw { return Saw{Frequency: DefaultFrequency} }

// Sine samples sin(Frequency*x) at p.Points() points over [0, Width].
func Sine(p Trig) (x, y []float64) {
	return trig(p, math.Sin)
}

// Cosine samples cos(Frequency*x) at p.Points() points over [0, Width].
func Cosine(p Trig) (x, y []float64) {
	return trig(p, math.Cos)
}

func trig(p Trig, fn func(float64) float64) (x, y []float64) {
	x = Linspace(0, p.Width, p.Points())
	y = make([]float64, len(x))
	for i, v := range x {
		y[i] = fn(p.Frequency * v)
	}

	return x, y
}

// Rectangular returns a 0/1 square wave over [0, RectDomain].
//
// y alternates with the sample index, not with time: y[i] = i mod 2. The
// apparent period therefore follows the point count.
func Rectangular(p Rect) (x, y []float64) {
	x = Linspace(0, RectDomain, p.Points())
	y = make([]float64, len(x))
	for i := range y {
		y[i] = float64(i % 2)
	}

	return x, y
}

// SawToothAt evaluates 2*(x*f - floor(0.5 + x*f)), a ramp in [-1, 1) with
// period 1/f.
func SawToothAt(x, frequency float64) float64 {
	xf := x * frequency
	return 2.0 * (xf - math.Floor(0.5+xf))
}

// SawToothFunc returns the continuous sawtooth for p.
func SawToothFunc(p Saw) func(float64) float64 {
	return func(x float64) float64 {
		return SawToothAt(x, p.Frequency)
	}
}

// SawTooth samples the sawtooth at SawSamples points over
// [SawDomainMin, SawDomainMax].
func SawTooth(p Saw) (x, y []float64) {
	f := SawToothFunc(p)

	x = Linspace(SawDomainMin, SawDomainMax, SawSamples)
	y = make([]float64, len(x))
	for i, v := range x {
		y[i] = f(v)
	}

	return x, y
}
