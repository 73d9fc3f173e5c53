package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// ErrRippleTooSmall is returned by KaiserOrder when the requested
// attenuation is below the range the Kaiser formulas cover.
var ErrRippleTooSmall = errors.New("ripple attenuation too small for Kaiser design")

// KaiserBeta computes the Kaiser window β parameter from the desired
// stopband attenuation in decibels.
//
// Formula from Kaiser & Schafer:
//   - For att > 50 dB: β = 0.1102 * (att - 8.7)
//   - For 21 dB < att ≤ 50 dB: β = 0.5842 * (att - 21)^0.4 + 0.07886 * (att - 21)
//   - For att ≤ 21 dB: β = 0
func KaiserBeta(attenuation float64) float64 {
	if attenuation > kaiserAttHigh {
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	} else if attenuation > kaiserAttMedium {
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	}
	return 0.0
}

// KaiserOrder estimates the number of taps and the β parameter of a
// Kaiser-windowed FIR filter.
//
// ripple is the stopband attenuation in dB (its absolute value is used) and
// width the transition width as a fraction of the Nyquist frequency.
//
//	numtaps = ceil((A - 7.95) / (2.285 * π * width) + 1)
//
// The result may be odd or even; no parity adjustment is made.
func KaiserOrder(ripple, width float64) (numTaps int, beta float64, err error) {
	a := math.Abs(ripple)
	if a < kaiserMinRippleDB {
		return 0, 0, fmt.Errorf("%w: %.2f dB (minimum %.0f dB)", ErrRippleTooSmall, a, kaiserMinRippleDB)
	}
	if width <= 0 {
		return 0, 0, fmt.Errorf("invalid transition width: %f (must be positive)", width)
	}

	beta = KaiserBeta(a)

	n := (a-kaiserOrderOffset)/kaiserOrderMultiplier/(math.Pi*width) + 1
	return int(math.Ceil(n)), beta, nil
}
