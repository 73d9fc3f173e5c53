package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidCoefficients is returned when a recursive filter cannot be run.
var ErrInvalidCoefficients = errors.New("invalid filter coefficients")

// IIR runs a causal recursive filter over signal in direct form II
// transposed, starting from zero state:
//
//	a[0]·y[n] = Σ_k b[k]·x[n-k] - Σ_{k≥1} a[k]·y[n-k]
//
// Coefficients are normalized by a[0]. The output has len(signal) samples.
func IIR(b, a, signal []float64) ([]float64, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, fmt.Errorf("%w: empty numerator or denominator", ErrInvalidCoefficients)
	}
	if a[0] == 0 {
		return nil, fmt.Errorf("%w: a[0] must be non-zero", ErrInvalidCoefficients)
	}

	order := max(len(b), len(a))
	bn := make([]float64, order)
	an := make([]float64, order)
	for i, v := range b {
		bn[i] = v / a[0]
	}
	for i, v := range a {
		an[i] = v / a[0]
	}

	out := make([]float64, len(signal))
	if order == 1 {
		for i, x := range signal {
			out[i] = bn[0] * x
		}
		return out, nil
	}

	// state[k] holds the delayed partial sum for tap k+1
	state := make([]float64, order-1)
	last := order - 2

	for i, x := range signal {
		y := bn[0]*x + state[0]
		for k := range last {
			state[k] = bn[k+1]*x - an[k+1]*y + state[k+1]
		}
		state[last] = bn[order-1]*x - an[order-1]*y
		out[i] = y
	}

	return out, nil
}
