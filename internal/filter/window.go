// Package filter provides FIR and IIR filter design functions.
package filter

import (
	"math"

	"github.com/tphakala/go-audio-filters/internal/mathutil"
	"gonum.org/v1/gonum/dsp/window"
)

const (
	// Window normalization
	windowNormalizationFactor = 2.0

	// Value of every symmetric window at a single-sample length
	singleTapValue = 1.0
)

// Hann returns the symmetric Hann window of the given length:
//
//	w[k] = 0.5*(1 - cos(2πk/(N-1)))
func Hann(length int) []float64 {
	return symmetric(window.Hann, length)
}

// Hamming returns the symmetric Hamming window (0.54, 0.46) of the given length.
func Hamming(length int) []float64 {
	return symmetric(window.Hamming, length)
}

// Blackman returns the symmetric three-term Blackman window (0.42, 0.5, 0.08)
// of the given length.
func Blackman(length int) []float64 {
	return symmetric(window.Blackman, length)
}

// Boxcar returns a rectangular window of ones.
func Boxcar(length int) []float64 {
	return symmetric(window.Rectangular, length)
}

// symmetric evaluates a gonum window over a sequence of ones. gonum's
// generators use an N-1 denominator, which gives the symmetric form used for
// FIR design. Lengths below two are handled here since the generators divide
// by N-1.
func symmetric(fn func([]float64) []float64, length int) []float64 {
	if length < 1 {
		return []float64{}
	}
	if length == 1 {
		return []float64{singleTapValue}
	}
	return window.NewValues(fn, length)
}

// KaiserWindow generates a Kaiser window of the specified length and β parameter.
//
// The Kaiser window provides excellent control over the trade-off between
// main lobe width and sidelobe level in frequency domain.
//
// Parameters:
//
//	length: Number of samples in the window
//	beta: Kaiser β parameter (controls sidelobe attenuation)
//	      Typically 0-15, where higher values = more attenuation but wider main lobe
//
// The window is symmetric: w[i] = w[length-1-i], and peaks at 1.0.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)

	if length == 1 {
		window[0] = singleTapValue
		return window
	}

	// w[n] = I₀(β * sqrt(1 - ((n - α)/α)²)) / I₀(β)
	// where α = (N-1)/2 and N is the window length
	alpha := float64(length-1) / windowNormalizationFactor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		// Position relative to center: [-1, 1]
		x := (float64(n) - alpha) / alpha

		arg := beta * math.Sqrt(math.Max(0, 1.0-x*x))
		window[n] = mathutil.BesselI0(arg) / i0Beta
	}

	return window
}
