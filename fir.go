package filters

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-audio-filters/internal/engine"
	"github.com/tphakala/go-audio-filters/internal/filter"
	"github.com/tphakala/go-audio-filters/internal/mathutil"
)

// HighpassTaps designs the FIRNumTaps-tap Hann-windowed highpass used by
// HighpassFilter. cut is in Hz and must lie strictly between 0 and rate/2.
//
// The taps are the spectral inverse of a windowed lowpass at cut,
// w[n]·(δ[n-c] - f·sinc(f·(n-c))) with c the centre tap and f = cut/(rate/2),
// and are not rescaled.
func HighpassTaps(rate, cut float64) ([]float64, error) {
	fc, err := validateCutoff(rate, cut)
	if err != nil {
		return nil, logInvalid("HighpassTaps", err)
	}

	return filter.Firwin(filter.FirwinParams{
		NumTaps:  FIRNumTaps,
		Cutoffs:  []float64{fc},
		Window:   filter.Hann(FIRNumTaps),
		PassZero: false,
		Scale:    false,
	})
}

// HighpassFilter attenuates everything below cut Hz. The filter is causal,
// so the output is delayed by (FIRNumTaps-1)/2 samples.
func HighpassFilter(signal []float64, rate, cut float64) ([]float64, error) {
	taps, err := HighpassTaps(rate, cut)
	if err != nil {
		return nil, err
	}
	return applyFIR("HighpassFilter", taps, signal), nil
}

// BandpassTaps designs the FIRNumTaps-tap windowed bandpass used by
// BandpassFilter.
//
// Two highpass designs at lowcut and highcut are combined by spectral
// inversion around the centre tap:
//
//	lo = firwin(lowcut), hi = δ - firwin(highcut)
//	bandpass = δ - (lo + hi)
//
// Both designs are unscaled and open at Nyquist, which makes the result pass
// the band between the cutoffs with unit magnitude and inverted phase.
func BandpassTaps(rate, lowcut, highcut float64, window Window) ([]float64, error) {
	low, high, err := validateBand(rate, lowcut, highcut)
	if err != nil {
		return nil, logInvalid("BandpassTaps", err)
	}

	win, err := window.coefficients(FIRNumTaps)
	if err != nil {
		return nil, logInvalid("BandpassTaps", err)
	}

	return combineBand(FIRNumTaps, low, high, win, false)
}

// BandpassFilter keeps the band between lowcut and highcut Hz using a
// FIRNumTaps-tap windowed FIR filter. The filter is causal, so the output is
// delayed by (FIRNumTaps-1)/2 samples.
func BandpassFilter(signal []float64, rate, lowcut, highcut float64, window Window) ([]float64, error) {
	taps, err := BandpassTaps(rate, lowcut, highcut, window)
	if err != nil {
		return nil, err
	}
	return applyFIR("BandpassFilter", taps, signal), nil
}

// KaiserBandpassOrder returns the Kaiser filter length and β needed for a
// KaiserRippleDB stopband with a KaiserTransitionHz transition at the given
// sample rate.
func KaiserBandpassOrder(rate float64) (numTaps int, beta float64, err error) {
	if rate <= 0 {
		return 0, 0, logInvalid("KaiserBandpassOrder",
			fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidRange, rate))
	}

	width := KaiserTransitionHz / (rate / nyquistDivisor)
	if width >= maxNormalizedWidth {
		return 0, 0, logInvalid("KaiserBandpassOrder",
			fmt.Errorf("%w: %v Hz transition is too wide for %v Hz sample rate", ErrInvalidRange, KaiserTransitionHz, rate))
	}

	numTaps, beta, err = mathutil.KaiserOrder(KaiserRippleDB, width)
	if err != nil {
		return 0, 0, logInvalid("KaiserBandpassOrder", fmt.Errorf("%w: %w", ErrInvalidRange, err))
	}

	log("KaiserBandpassOrder").WithFields(logrus.Fields{
		"rate":  rate,
		"taps":  numTaps,
		"beta":  beta,
		"width": width,
	}).Debug("Kaiser order estimated")

	return numTaps, beta, nil
}

// KaiserBandpassTaps designs the Kaiser-windowed bandpass used by
// KaiserBandpassFilter. The length follows from KaiserBandpassOrder and may
// be even; the centre tap is then numTaps/2.
//
// Both component designs are scaled lowpass filters, so the result is the
// difference of a lowpass at highcut and a lowpass at lowcut with unit gain
// in the passband.
func KaiserBandpassTaps(rate, lowcut, highcut float64) ([]float64, error) {
	low, high, err := validateBand(rate, lowcut, highcut)
	if err != nil {
		return nil, logInvalid("KaiserBandpassTaps", err)
	}

	numTaps, beta, err := KaiserBandpassOrder(rate)
	if err != nil {
		return nil, err
	}

	return combineBand(numTaps, low, high, filter.KaiserWindow(numTaps, beta), true)
}

// KaiserBandpassFilter keeps the band between lowcut and highcut Hz using a
// Kaiser-windowed FIR with a 60 dB stopband and a 5 Hz transition. The
// filter can be very long at high sample rates; long filters are applied
// with FFT convolution.
func KaiserBandpassFilter(signal []float64, rate, lowcut, highcut float64) ([]float64, error) {
	taps, err := KaiserBandpassTaps(rate, lowcut, highcut)
	if err != nil {
		return nil, err
	}
	return applyFIR("KaiserBandpassFilter", taps, signal), nil
}

// combineBand builds δ - (lo + (δ - hi)) from two single-cutoff designs at
// the normalized edges low and high, both using win. passZero selects
// lowpass component designs (scaled to unit DC gain) instead of highpass
// ones (unscaled).
func combineBand(numTaps int, low, high float64, win []float64, passZero bool) ([]float64, error) {
	center := numTaps / 2

	design := func(cut float64) ([]float64, error) {
		return filter.Firwin(filter.FirwinParams{
			NumTaps:  numTaps,
			Cutoffs:  []float64{cut},
			Window:   win,
			PassZero: passZero,
			Scale:    passZero,
		})
	}

	lo, err := design(low)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	hi, err := design(high)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}

	filter.SpectralInvert(hi, center)
	floats.Add(lo, hi)
	return filter.SpectralInvert(lo, center), nil
}

// applyFIR runs taps causally over signal.
func applyFIR(function string, taps, signal []float64) []float64 {
	log(function).WithFields(logrus.Fields{
		"taps":    len(taps),
		"samples": len(signal),
		"fft":     engine.UsesFFT(len(taps)),
	}).Debug("Applying FIR filter")

	return engine.Convolve(signal, taps, 0)
}
