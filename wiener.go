package filters

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-audio-filters/internal/engine"
)

// WienerFilter suppresses stationary noise with a local-statistics Wiener
// estimator over a WienerSize-sample neighbourhood.
//
// For each sample the local mean μ and variance σ² are taken over the
// surrounding window (zero padded at the edges). The noise power ν is the
// mean of σ² over the whole signal. The output is
//
//	y = μ                       if σ² <= ν
//	y = μ + (x - μ)(1 - ν/σ²)   otherwise
//
// so quiet regions are flattened to their mean while high-variance detail
// is kept. A constant signal returns its local means, never NaN.
func WienerFilter(signal []float64) ([]float64, error) {
	if len(signal) < WienerSize {
		return nil, logInvalid("WienerFilter",
			fmt.Errorf("%w: signal has %d samples, need at least %d", ErrInvalidLength, len(signal), WienerSize))
	}

	ones := make([]float64, WienerSize)
	for i := range ones {
		ones[i] = 1
	}
	inv := 1.0 / WienerSize

	localMean := engine.ConvolveSame(signal, ones)
	floats.Scale(inv, localMean)

	squares := make([]float64, len(signal))
	floats.MulTo(squares, signal, signal)
	localVar := engine.ConvolveSame(squares, ones)
	floats.Scale(inv, localVar)
	for i, m := range localMean {
		localVar[i] -= m * m
	}

	noise := stat.Mean(localVar, nil)

	out := make([]float64, len(signal))
	for i, x := range signal {
		m, v := localMean[i], localVar[i]
		if v <= noise {
			out[i] = m
			continue
		}
		out[i] = m + (x-m)*(1-noise/v)
	}

	log("WienerFilter").WithFields(logrus.Fields{
		"samples": len(signal),
		"noise":   noise,
	}).Debug("Wiener filter applied")

	return out, nil
}
