package filter

import (
	"math"
	"math/cmplx"
)

const (
	defaultResponsePoints = 512

	minMagnitude = 1e-10 // Avoid log(0)
	dbMultiplier = 20.0  // 20*log10 for magnitude
)

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeFrequencyResponse calculates the frequency response of a FIR filter.
//
// Uses the discrete-time Fourier transform (DTFT) to evaluate the filter's
// frequency response at numPoints frequencies from DC up to (but excluding)
// Nyquist. numPoints <= 0 selects 512 points.
func ComputeFrequencyResponse(coeffs []float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	for k := range numPoints {
		// Normalized frequency (0 to 0.5)
		freq := float64(k) / (windowNormalizationFactor * float64(numPoints))
		response.Frequencies[k] = freq

		h := Response(coeffs, nil, windowNormalizationFactor*math.Pi*freq)
		response.Magnitude[k] = cmplx.Abs(h)
		response.Phase[k] = cmplx.Phase(h)
	}

	return response
}

// Response evaluates H(e^jω) = B(e^jω) / A(e^jω) at angular frequency omega
// (radians per sample). A nil or empty a is treated as [1].
func Response(b, a []float64, omega float64) complex128 {
	num := polyval(b, omega)
	if len(a) == 0 {
		return num
	}
	return num / polyval(a, omega)
}

// polyval computes Σ c[n]·e^(-jωn).
func polyval(c []float64, omega float64) complex128 {
	var realPart, imagPart float64
	for n, v := range c {
		angle := omega * float64(n)
		realPart += v * math.Cos(angle)
		imagPart -= v * math.Sin(angle)
	}
	return complex(realPart, imagPart)
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
