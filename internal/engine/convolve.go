// Package engine applies filter coefficients to complete in-memory signals.
package engine

import (
	"slices"
)

// Convolve returns len(signal) samples of the full linear convolution of
// signal and kernel, starting at index offset:
//
//	out[i] = Σ_k kernel[k] · signal[i+offset-k]
//
// Samples outside the signal are treated as zero. offset 0 is a causal
// filter; offset (len(kernel)-1)/2 is the centred "same" mode.
func Convolve(signal, kernel []float64, offset int) []float64 {
	n := len(signal)
	m := len(kernel)
	out := make([]float64, n)
	if n == 0 || m == 0 {
		return out
	}

	// out[i] = Σ_j rev[j] · padded[i+j] with rev the reversed kernel and
	// padded = (m-1-offset) zeros, signal, offset zeros.
	left := m - 1 - offset
	padded := make([]float64, left+n+offset)
	copy(padded[left:], signal)

	rev := slices.Clone(kernel)
	slices.Reverse(rev)

	ConvolveValid(out, padded, rev)
	return out
}

// ConvolveSame returns the centred "same" convolution of signal and kernel.
// The output always has len(signal) samples, whatever the kernel length.
func ConvolveSame(signal, kernel []float64) []float64 {
	return Convolve(signal, kernel, (len(kernel)-1)/sameModeDivisor)
}
