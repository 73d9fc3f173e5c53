// Package filters provides one-shot noise reduction filters for mono audio
// in pure Go.
//
// Every function takes a complete signal as []float64 and returns a new
// slice of the same length; inputs are never modified and no state is kept
// between calls.
//
// # Filters
//
//   - WienerFilter: local-statistics Wiener noise suppression over a
//     31-sample neighbourhood
//   - RemoveClicks: silences windows whose energy exceeds five standard
//     deviations of the per-window energy (see CalculateEnergy)
//   - HighpassFilter: 199-tap Hann-windowed FIR highpass
//   - BandpassFilter: 199-tap windowed FIR bandpass with a selectable Window
//   - KaiserBandpassFilter: Kaiser-windowed FIR bandpass with a 60 dB
//     stopband and a 5 Hz transition, sized from the sample rate
//   - ButterBandpassFilter: Butterworth IIR bandpass (see ButterBandpass for
//     the coefficients)
//   - MovingAverage: centred boxcar smoothing
//
// FIR filters are applied causally, so their output is delayed by half the
// filter length. Short filters use direct SIMD convolution via
// github.com/tphakala/simd; filters of 400 taps or more use overlap-save FFT
// convolution.
//
// # Quick Start
//
//	cleaned, err := filters.BandpassFilter(samples, 44100, 300, 3400, filters.WindowHann)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Filters can be chained over a github.com/go-audio/audio buffer:
//
//	out, err := filters.FilterBuffer(buf,
//	    filters.ClickRemovalStage(256),
//	    filters.ButterBandpassStage(1000, 8000, filters.DefaultButterOrder),
//	    filters.WienerStage(),
//	)
//
// # Errors
//
// Invalid parameters are reported with errors wrapping ErrInvalidRange,
// ErrInvalidLength or ErrShapeMismatch; test them with errors.Is.
//
// # Logging
//
// Diagnostic output goes through github.com/sirupsen/logrus and is
// discarded unless a logger is installed with SetLogger.
package filters
