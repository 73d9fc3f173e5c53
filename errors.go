package filters

import (
	"errors"
	"fmt"
)

// Common errors returned by the filters.
var (
	// ErrInvalidRange indicates a cutoff, order, rate or window outside its valid range.
	ErrInvalidRange = errors.New("parameter out of range")

	// ErrInvalidLength indicates a non-positive window length or a signal
	// shorter than the filter neighbourhood.
	ErrInvalidLength = errors.New("invalid length")

	// ErrShapeMismatch indicates an audio buffer the filters cannot process.
	ErrShapeMismatch = errors.New("unsupported buffer shape")
)

// validateBand checks a pair of band edges against the Nyquist frequency of
// rate and returns them normalized to Nyquist.
func validateBand(rate, lowcut, highcut float64) (low, high float64, err error) {
	if rate <= 0 {
		return 0, 0, fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidRange, rate)
	}
	nyq := rate / nyquistDivisor

	if lowcut <= 0 || lowcut >= nyq {
		return 0, 0, fmt.Errorf("%w: lowcut %v Hz must be in (0, %v)", ErrInvalidRange, lowcut, nyq)
	}
	if highcut <= 0 || highcut >= nyq {
		return 0, 0, fmt.Errorf("%w: highcut %v Hz must be in (0, %v)", ErrInvalidRange, highcut, nyq)
	}
	if lowcut >= highcut {
		return 0, 0, fmt.Errorf("%w: lowcut %v Hz must be below highcut %v Hz", ErrInvalidRange, lowcut, highcut)
	}

	return lowcut / nyq, highcut / nyq, nil
}

// validateCutoff checks a single cutoff against the Nyquist frequency of rate
// and returns it normalized to Nyquist.
func validateCutoff(rate, cut float64) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidRange, rate)
	}
	nyq := rate / nyquistDivisor

	if cut <= 0 || cut >= nyq {
		return 0, fmt.Errorf("%w: cutoff %v Hz must be in (0, %v)", ErrInvalidRange, cut, nyq)
	}

	return cut / nyq, nil
}
