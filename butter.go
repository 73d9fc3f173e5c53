package filters

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-audio-filters/internal/engine"
	"github.com/tphakala/go-audio-filters/internal/filter"
)

// ButterBandpass designs a digital Butterworth bandpass filter with -3 dB
// edges at lowcut and highcut Hz for sample rate fs. It returns the
// transfer function numerator b and denominator a, each with 2*order+1
// coefficients and a[0] = 1.
func ButterBandpass(lowcut, highcut, fs float64, order int) (b, a []float64, err error) {
	if order < 1 {
		return nil, nil, logInvalid("ButterBandpass",
			fmt.Errorf("%w: order must be at least 1, got %d", ErrInvalidRange, order))
	}

	low, high, err := validateBand(fs, lowcut, highcut)
	if err != nil {
		return nil, nil, logInvalid("ButterBandpass", err)
	}

	b, a, err = filter.ButterBandpass(filter.ButterParams{
		Order: order,
		Low:   low,
		High:  high,
	})
	if err != nil {
		return nil, nil, logInvalid("ButterBandpass", fmt.Errorf("%w: %w", ErrInvalidRange, err))
	}

	return b, a, nil
}

// ButterBandpassFilter keeps the band between lowcut and highcut Hz with a
// Butterworth IIR filter of the given order (DefaultButterOrder is the usual
// choice). The recursion runs forward only, so the output carries the
// filter's phase response.
func ButterBandpassFilter(data []float64, lowcut, highcut, fs float64, order int) ([]float64, error) {
	b, a, err := ButterBandpass(lowcut, highcut, fs, order)
	if err != nil {
		return nil, err
	}

	log("ButterBandpassFilter").WithFields(logrus.Fields{
		"order":   order,
		"lowcut":  lowcut,
		"highcut": highcut,
		"samples": len(data),
	}).Debug("Applying Butterworth bandpass")

	out, err := engine.IIR(b, a, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return out, nil
}
