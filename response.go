package filters

import (
	"math"

	"github.com/tphakala/go-audio-filters/internal/filter"
)

// FilterResponse holds a sampled frequency response.
type FilterResponse = filter.FilterResponse

// FrequencyResponse evaluates the transfer function b/a at freq Hz for
// sample rate rate. Pass a nil a for FIR taps.
func FrequencyResponse(b, a []float64, freq, rate float64) complex128 {
	omega := 2 * math.Pi * freq / rate
	return filter.Response(b, a, omega)
}

// FIRResponse samples the response of FIR taps at numPoints frequencies
// from DC up to Nyquist. Frequencies are normalized to the sample rate
// (0 to 0.5). numPoints <= 0 selects a default resolution.
func FIRResponse(taps []float64, numPoints int) FilterResponse {
	return filter.ComputeFrequencyResponse(taps, numPoints)
}

// MagnitudeDB converts a linear magnitude to decibels, flooring very small
// values to avoid -Inf.
func MagnitudeDB(magnitude float64) float64 {
	return filter.MagnitudeDB(magnitude)
}
